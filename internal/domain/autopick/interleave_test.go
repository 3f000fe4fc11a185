package autopick

import (
	"testing"

	"retailcore/internal/domain/entities"
)

func mkCandidates(seen, unseen int) []Candidate {
	out := make([]Candidate, 0, seen+unseen)
	for i := 0; i < seen; i++ {
		out = append(out, Candidate{Product: entities.Product{ID: "s" + string(rune('0'+i))}, Seen: true})
	}
	for i := 0; i < unseen; i++ {
		out = append(out, Candidate{Product: entities.Product{ID: "u" + string(rune('0'+i))}, Seen: false})
	}
	return out
}

func TestInterleave(t *testing.T) {
	t.Run("first unseen within 1/share positions", func(t *testing.T) {
		got := Interleave(mkCandidates(15, 5), 0.1)
		if len(got) != 20 {
			t.Fatalf("expected 20 candidates, got %d", len(got))
		}
		first := -1
		for i, c := range got {
			if !c.Seen {
				first = i
				break
			}
		}
		if first < 0 || first > 9 {
			t.Fatalf("first unseen candidate must appear within the first 10 positions, got index %d", first)
		}
	})

	t.Run("default share pays the first unseen at exactly position 10", func(t *testing.T) {
		got := Interleave(mkCandidates(15, 5), 0.1)
		for i := 0; i < 9; i++ {
			if !got[i].Seen {
				t.Fatalf("expected a seen candidate at index %d, got %+v", i, got[i])
			}
		}
		if got[9].Seen {
			t.Fatalf("expected the first unseen candidate at index 9, got %+v", got[9])
		}
	})

	t.Run("relative order preserved in both partitions", func(t *testing.T) {
		got := Interleave(mkCandidates(6, 6), 0.5)
		var seenIDs, unseenIDs []string
		for _, c := range got {
			if c.Seen {
				seenIDs = append(seenIDs, c.Product.ID)
			} else {
				unseenIDs = append(unseenIDs, c.Product.ID)
			}
		}
		for i := 1; i < len(seenIDs); i++ {
			if seenIDs[i] < seenIDs[i-1] {
				t.Fatalf("seen order not preserved: %v", seenIDs)
			}
		}
		for i := 1; i < len(unseenIDs); i++ {
			if unseenIDs[i] < unseenIDs[i-1] {
				t.Fatalf("unseen order not preserved: %v", unseenIDs)
			}
		}
	})

	t.Run("zero share returns input unchanged", func(t *testing.T) {
		in := mkCandidates(3, 3)
		got := Interleave(in, 0)
		for i := range in {
			if got[i].Product.ID != in[i].Product.ID {
				t.Fatalf("expected untouched sequence, got %+v", got)
			}
		}
	})

	t.Run("no seen candidates", func(t *testing.T) {
		got := Interleave(mkCandidates(0, 4), 0.1)
		if len(got) != 4 {
			t.Fatalf("expected all unseen emitted, got %d", len(got))
		}
	})

	t.Run("unseen exhausted before seen", func(t *testing.T) {
		got := Interleave(mkCandidates(8, 1), 1)
		if len(got) != 9 {
			t.Fatalf("expected 9 candidates, got %d", len(got))
		}
		if got[0].Seen {
			t.Fatalf("with share 1 the first emission must be unseen")
		}
	})
}
