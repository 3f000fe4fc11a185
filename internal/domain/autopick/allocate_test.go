package autopick

import (
	"errors"
	"testing"

	"retailcore/internal/domain/entities"
)

func checkLineInvariants(t *testing.T, got Allocation) {
	t.Helper()
	sum := 0.0
	for _, it := range got.Items {
		if it.Quantity <= 0 {
			t.Fatalf("non-positive quantity: %+v", it)
		}
		if it.Total != Round2(it.Price*float64(it.Quantity)) {
			t.Fatalf("line total mismatch: %+v", it)
		}
		sum += it.Total
	}
	if got.Total != Round2(sum) {
		t.Fatalf("grand total %v != sum of lines %v", got.Total, Round2(sum))
	}
}

func TestAllocate_BudgetWindow(t *testing.T) {
	hist := AggregateHistory(nil)
	seq := []Candidate{
		{Product: entities.Product{ID: "p1", Name: "Lager", Category: "beverages", Stock: 50, BoxSize: 1}, Price: 100},
		{Product: entities.Product{ID: "p2", Name: "Stout", Category: "beverages", Stock: 50, BoxSize: 1}, Price: 400},
	}
	params := AllocateParams{
		Target:     1200,
		LowerBound: 1000,
		UpperBound: 1200,
		MaxBudget:  1200,
		Weights:    Weights{ByCategory: map[string]float64{"beverages": 1}, Fallback: 1},
	}

	got, err := Allocate(seq, hist, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total < 1000 || got.Total > 1200 {
		t.Fatalf("total %v outside [1000, 1200]", got.Total)
	}
	checkLineInvariants(t, got)
	for _, it := range got.Items {
		if it.Quantity > 50 {
			t.Fatalf("quantity exceeds stock: %+v", it)
		}
	}
}

func TestAllocate_CategoryRuleFloor(t *testing.T) {
	hist := AggregateHistory(nil)
	seq := []Candidate{
		{Product: entities.Product{ID: "p1", Category: "beer", Volume: "0.5", Stock: 100}, Price: 10},
	}
	params := AllocateParams{
		Target:     50,
		LowerBound: 40,
		UpperBound: 60,
		Weights:    Weights{ByCategory: map[string]float64{"beer": 1}, Fallback: 1},
		Rules: []entities.CategoryRule{
			{Category: "beer", Volume: "0.5", MinQuantity: 8, Enabled: true},
			{Category: "beer", MinQuantity: 2, Enabled: true},
			{Category: "beer", MinQuantity: 50, Enabled: false},
		},
	}

	got, err := Allocate(seq, hist, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Items[0].Quantity != 8 {
		t.Fatalf("expected rule floor 8, got %d", got.Items[0].Quantity)
	}
}

func TestAllocate_TopUpGrowsCheapestFirst(t *testing.T) {
	hist := AggregateHistory(nil)
	seq := []Candidate{
		{Product: entities.Product{ID: "expensive", Category: "a", Stock: 2}, Price: 300},
		{Product: entities.Product{ID: "cheap", Category: "b", Stock: 20}, Price: 100},
	}
	params := AllocateParams{
		Target:     1000,
		LowerBound: 900,
		UpperBound: 1050,
		Weights:    Weights{ByCategory: map[string]float64{"a": 0.5, "b": 0.5}, Fallback: 0.5},
	}

	got, err := Allocate(seq, hist, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total < 900 {
		t.Fatalf("top-up did not reach lower bound: %v", got.Total)
	}
	checkLineInvariants(t, got)

	// Pass 1 yields 300 + 500 = 800; the top-up must extend the cheap
	// line, not the expensive one.
	for _, it := range got.Items {
		if it.ProductID == "cheap" && it.Quantity != 6 {
			t.Fatalf("expected cheap line topped up to 6, got %d", it.Quantity)
		}
		if it.ProductID == "expensive" && it.Quantity != 1 {
			t.Fatalf("expected expensive line untouched, got %d", it.Quantity)
		}
	}
}

func TestAllocate_Failures(t *testing.T) {
	hist := AggregateHistory(nil)

	t.Run("no candidates", func(t *testing.T) {
		_, err := Allocate(nil, hist, AllocateParams{Target: 100, LowerBound: 80, UpperBound: 105})
		if !errors.Is(err, ErrNoSelection) {
			t.Fatalf("expected ErrNoSelection, got %v", err)
		}
	})

	t.Run("budget unreachable on exhausted stock", func(t *testing.T) {
		seq := []Candidate{
			{Product: entities.Product{ID: "scarce", Category: "a", Stock: 1}, Price: 10},
		}
		params := AllocateParams{
			Target:     1000,
			LowerBound: 800,
			UpperBound: 1050,
			Weights:    Weights{ByCategory: map[string]float64{"a": 1}, Fallback: 1},
		}
		_, err := Allocate(seq, hist, params)
		if !errors.Is(err, ErrBudgetUnreachable) {
			t.Fatalf("expected ErrBudgetUnreachable, got %v", err)
		}
	})

	t.Run("max budget caps the fill", func(t *testing.T) {
		seq := []Candidate{
			{Product: entities.Product{ID: "p", Category: "a", Stock: 50}, Price: 200},
		}
		params := AllocateParams{
			Target:     100,
			LowerBound: 80,
			UpperBound: 105,
			MaxBudget:  100,
			Weights:    Weights{ByCategory: map[string]float64{"a": 1}, Fallback: 1},
		}
		_, err := Allocate(seq, hist, params)
		if !errors.Is(err, ErrNoSelection) {
			t.Fatalf("expected ErrNoSelection, got %v", err)
		}
	})
}

func TestRoundToBox(t *testing.T) {
	cases := []struct {
		name    string
		desired int
		box     int
		stock   int
		want    int
	}{
		{"no box clamps to stock", 5, 1, 3, 3},
		{"no box keeps desired", 5, 0, 100, 5},
		{"negative floors at zero", -2, 0, 100, 0},
		{"quarter of box rounds up to half box", 5, 12, 100, 6},
		{"below quarter left unrounded", 2, 12, 100, 2},
		{"exactly a quarter rounds up", 3, 12, 100, 6},
		{"above box rounds down to whole boxes", 20, 12, 100, 12},
		{"two boxes", 25, 12, 100, 24},
		{"rounded quantity clamped to stock", 20, 12, 10, 10},
		{"odd box half rounds to nearest", 2, 7, 100, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundToBox(tc.desired, tc.box, tc.stock); got != tc.want {
				t.Fatalf("RoundToBox(%d, %d, %d) = %d, want %d", tc.desired, tc.box, tc.stock, got, tc.want)
			}
		})
	}
}
