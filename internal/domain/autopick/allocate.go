package autopick

import (
	"errors"
	"math"
	"sort"

	"retailcore/internal/domain/entities"
)

var (
	// ErrNoSelection means zero line items were producible from the
	// eligible candidates under the given filters.
	ErrNoSelection = errors.New("no items selectable under the given filters")
	// ErrBudgetUnreachable means items were selected but the total stayed
	// below the lower bound after both passes.
	ErrBudgetUnreachable = errors.New("budget lower bound not reachable")
)

// AllocateParams drives the two-pass budget fitting.
type AllocateParams struct {
	Target     float64
	LowerBound float64
	UpperBound float64
	// MaxBudget is the caller's explicit maximum, 0 when none was given.
	// A committed line may overrun it by at most 5%.
	MaxBudget float64
	Weights   Weights
	Rules     []entities.CategoryRule
}

// Allocation is the allocator's successful output.
type Allocation struct {
	Items []entities.DraftItem
	Total float64
}

const maxBudgetOverrun = 1.05

// Allocate walks the interleaved candidate sequence and accumulates line
// items until the budget window is satisfied or candidates run out.
//
// Pass 1 fills using per-category budget room; pass 2 tops up by ascending
// price when the total is still short of the lower bound. Category-spend
// bookkeeping makes both passes strictly sequential.
func Allocate(seq []Candidate, hist History, p AllocateParams) (Allocation, error) {
	a := &allocation{
		params:  p,
		hist:    hist,
		spent:   make(map[string]float64),
		itemIdx: make(map[string]int),
	}

	a.fill(seq)
	if a.total < p.LowerBound {
		a.topUp(seq)
	}

	if len(a.items) == 0 {
		return Allocation{}, ErrNoSelection
	}
	if a.total < p.LowerBound {
		return Allocation{}, ErrBudgetUnreachable
	}
	return Allocation{Items: a.items, Total: Round2(a.total)}, nil
}

type allocation struct {
	params AllocateParams
	hist   History

	items   []entities.DraftItem
	itemIdx map[string]int
	// committed keeps the candidate behind each line item so pass 2 can
	// re-derive price, box size and stock.
	committed []Candidate
	total     float64
	spent     map[string]float64
}

func (a *allocation) fill(seq []Candidate) {
	p := a.params
	for _, c := range seq {
		if a.total >= p.UpperBound && a.total >= p.LowerBound {
			return
		}
		if _, ok := a.itemIdx[c.Product.ID]; ok {
			continue
		}
		if c.Price <= 0 {
			continue
		}

		cat := CategoryKey(c.Product.Category)
		avg := a.hist.AvgQuantity(c.Product.ID, c.Product.Category, c.Product.Volume)
		room := p.Weights.For(cat)*p.Target - a.spent[cat]

		desired := avg
		if room > 0 {
			desired = int(room / c.Price)
		}
		qty := maxInt(desired, a.ruleMin(c.Product), avg)

		if p.MaxBudget > 0 {
			overall := p.MaxBudget - a.total
			if capQty := int(overall / c.Price); qty > capQty {
				qty = capQty
			}
		}

		qty = RoundToBox(qty, c.Product.BoxSize, c.Product.Stock)
		if qty <= 0 {
			continue
		}
		lineTotal := Round2(c.Price * float64(qty))
		if lineTotal <= 0 {
			continue
		}
		if p.MaxBudget > 0 && a.total+lineTotal > p.MaxBudget*maxBudgetOverrun {
			continue
		}

		a.commit(c, qty, lineTotal, cat)
	}
}

// topUp grows the cheapest positions first: already-selected items, then
// still-unselected candidates, the whole pool ordered by ascending price.
func (a *allocation) topUp(seq []Candidate) {
	p := a.params

	pool := make([]Candidate, 0, len(a.committed)+len(seq))
	pool = append(pool, a.committed...)
	for _, c := range seq {
		if _, ok := a.itemIdx[c.Product.ID]; !ok {
			pool = append(pool, c)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Price < pool[j].Price })

	for _, c := range pool {
		if a.total >= p.LowerBound {
			return
		}
		if c.Price <= 0 {
			continue
		}

		cat := CategoryKey(c.Product.Category)
		avg := a.hist.AvgQuantity(c.Product.ID, c.Product.Category, c.Product.Volume)

		existing := 0
		existingTotal := 0.0
		idx, selected := a.itemIdx[c.Product.ID]
		if selected {
			existing = a.items[idx].Quantity
			existingTotal = a.items[idx].Total
		}

		byNeed := maxInt(1, int(math.Ceil((p.LowerBound-a.total)/c.Price)))
		room := p.Weights.For(cat)*p.Target - a.spent[cat]
		byRoom := avg
		if room > 0 {
			byRoom = int(room / c.Price)
		}

		target := maxInt(existing+byNeed, existing+byRoom, a.ruleMin(c.Product), existing+avg)
		target = RoundToBox(target, c.Product.BoxSize, c.Product.Stock)
		if target-existing <= 0 {
			continue
		}

		newTotal := Round2(c.Price * float64(target))
		delta := Round2(newTotal - existingTotal)
		if delta <= 0 {
			continue
		}
		if p.MaxBudget > 0 && a.total+delta > p.MaxBudget*maxBudgetOverrun {
			continue
		}

		if selected {
			a.items[idx].Quantity = target
			a.items[idx].Total = newTotal
			a.total += delta
			a.spent[cat] += delta
		} else {
			a.commit(c, target, newTotal, cat)
		}
	}
}

func (a *allocation) commit(c Candidate, qty int, lineTotal float64, cat string) {
	a.itemIdx[c.Product.ID] = len(a.items)
	a.committed = append(a.committed, c)
	a.items = append(a.items, entities.DraftItem{
		ProductID: c.Product.ID,
		Name:      c.Product.Name,
		Category:  c.Product.Category,
		Volume:    c.Product.Volume,
		ImageURL:  c.Product.PrimaryImage(),
		Quantity:  qty,
		Price:     c.Price,
		Total:     lineTotal,
	})
	a.total += lineTotal
	a.spent[cat] += lineTotal
}

// ruleMin returns the largest enabled minimum-quantity floor matching the
// product's category and volume.
func (a *allocation) ruleMin(p entities.Product) int {
	min := 0
	for _, r := range a.params.Rules {
		if r.Matches(p.Category, p.Volume) && r.MinQuantity > min {
			min = r.MinQuantity
		}
	}
	return min
}

// RoundToBox applies box-size rounding to a raw desired quantity and
// clamps the result to available stock.
//
// With a box size above one: a desired quantity of at least one box rounds
// down to a whole number of boxes; below one box it rounds up to half a
// box when it reaches a quarter of the box, otherwise it is left as is.
func RoundToBox(desired, boxSize, stock int) int {
	if desired < 0 {
		desired = 0
	}
	if boxSize > 1 {
		if desired >= boxSize {
			desired = (desired / boxSize) * boxSize
		} else if desired*4 >= boxSize {
			half := int(math.Round(float64(boxSize) / 2))
			if half < 1 {
				half = 1
			}
			desired = half
		}
	}
	if desired > stock {
		desired = stock
	}
	return desired
}

func maxInt(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
