package filter

import (
	"cmp"
	"slices"

	"vehicle-rental/internal/domain/vehicle"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	FirstPageSize = 12
	NextPageSize  = 8
)

// Engine computes visible results. It holds no per-call state and is safe for
// concurrent use; a collator is built per sort since collate.Collator is not.
type Engine struct {
	locale language.Tag
}

func NewEngine(locale language.Tag) *Engine {
	return &Engine{locale: locale}
}

// NewEngineForLocale parses a BCP 47 tag, falling back to German.
func NewEngineForLocale(tag string) *Engine {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.German
	}
	return NewEngine(t)
}

func (e *Engine) Locale() language.Tag { return e.locale }

// ComputeVisible filters catalog by every active predicate and sorts the
// survivors stably. It does not modify catalog.
func (e *Engine) ComputeVisible(catalog []*vehicle.Vehicle, c Criteria) []*vehicle.Vehicle {
	preds := c.Predicates()
	out := make([]*vehicle.Vehicle, 0, len(catalog))
	for _, v := range catalog {
		if v == nil {
			continue
		}
		if MatchesAll(v, preds) {
			out = append(out, v)
		}
	}
	e.sort(out, c.Sort())
	return out
}

func (e *Engine) sort(vs []*vehicle.Vehicle, key SortKey) {
	switch key {
	case SortPriceDesc:
		slices.SortStableFunc(vs, func(a, b *vehicle.Vehicle) int {
			return cmp.Compare(b.DailyRate(), a.DailyRate())
		})
	case SortNameAsc, SortNameDesc:
		col := collate.New(e.locale)
		sign := 1
		if key == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(vs, func(a, b *vehicle.Vehicle) int {
			return sign * col.CompareString(a.Model(), b.Model())
		})
	default:
		slices.SortStableFunc(vs, func(a, b *vehicle.Vehicle) int {
			return cmp.Compare(a.DailyRate(), b.DailyRate())
		})
	}
}

// Page slices a visible list; out-of-range offsets yield an empty page.
func Page(vs []*vehicle.Vehicle, offset, limit int) []*vehicle.Vehicle {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(vs) || limit <= 0 {
		return []*vehicle.Vehicle{}
	}
	end := min(offset+limit, len(vs))
	return vs[offset:end]
}

// NextPageLimit mirrors the listing's "load more" step.
func NextPageLimit(shown int) int {
	if shown <= 0 {
		return FirstPageSize
	}
	return NextPageSize
}
