package filter

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"vehicle-rental/internal/domain/vehicle"
)

var (
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrUnknownSortKey    = errors.New("unknown sort key")
	ErrUnknownField      = errors.New("unknown filter field")
)

// Field enumerates the multi-select attributes of a vehicle.
type Field int

const (
	FieldBrand Field = iota + 1
	FieldType
	FieldGear
	FieldFuel

	fieldCount = int(FieldFuel)
)

var Fields = []Field{FieldBrand, FieldType, FieldGear, FieldFuel}

func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	switch f {
	case FieldBrand:
		return "brand"
	case FieldType:
		return "type"
	case FieldGear:
		return "gear"
	case FieldFuel:
		return "fuel"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

func (f Field) valid() bool { return f >= FieldBrand && f <= FieldFuel }

func (f Field) valueOf(v *vehicle.Vehicle) string {
	switch f {
	case FieldBrand:
		return v.Brand()
	case FieldType:
		return v.Type()
	case FieldGear:
		return v.Gear()
	case FieldFuel:
		return v.Fuel()
	default:
		return ""
	}
}

type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortPriceAsc, nil
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded admits every non-negative rate.
var Unbounded = PriceRange{Min: 0, Max: math.Inf(1)}

func (r PriceRange) IsBounded() bool {
	return r.Min > 0 || !math.IsInf(r.Max, 1)
}

func (r PriceRange) Contains(rate float64) bool {
	return rate >= r.Min && rate <= r.Max
}

// Criteria is a value type: copies never share mutable state, every mutator
// installs fresh slices.
type Criteria struct {
	selections    [fieldCount][]string
	capacities    []vehicle.SeatBand
	price         PriceRange
	priceSet      bool
	pickup        string
	dropoff       string
	onlyAvailable bool
	sort          SortKey
}

func NewCriteria() Criteria {
	return Criteria{sort: SortPriceAsc}
}

func normalizeChoice(s string) string {
	return vehicle.NormalizeText(s)
}

// Select replaces the selection for f. No values clears it.
func (c *Criteria) Select(f Field, values ...string) error {
	if !f.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	var out []string
	for _, v := range values {
		n := normalizeChoice(v)
		if n == "" || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	slices.Sort(out)
	c.selections[f-1] = out
	return nil
}

// Toggle adds value to the selection for f, or removes it when present.
func (c *Criteria) Toggle(f Field, value string) error {
	if !f.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	n := normalizeChoice(value)
	cur := c.selections[f-1]
	if slices.Contains(cur, n) {
		next := slices.DeleteFunc(slices.Clone(cur), func(s string) bool { return s == n })
		return c.Select(f, next...)
	}
	return c.Select(f, append(slices.Clone(cur), n)...)
}

func (c *Criteria) Clear(f Field) error {
	return c.Select(f)
}

func (c *Criteria) SelectCapacities(bands ...vehicle.SeatBand) error {
	var out []vehicle.SeatBand
	for _, b := range bands {
		if !b.IsValid() {
			return fmt.Errorf("%w: %d", vehicle.ErrInvalidSeatBand, int(b))
		}
		if !slices.Contains(out, b) {
			out = append(out, b)
		}
	}
	slices.Sort(out)
	c.capacities = out
	return nil
}

// SetPriceRange enforces 0 <= min <= max. Use math.Inf(1) for an open upper bound.
func (c *Criteria) SetPriceRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || lo > hi {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidPriceRange, lo, hi)
	}
	c.price = PriceRange{Min: lo, Max: hi}
	c.priceSet = true
	return nil
}

func (c *Criteria) SetLocations(pickup, dropoff string) {
	c.pickup = strings.TrimSpace(pickup)
	c.dropoff = strings.TrimSpace(dropoff)
}

// SwapLocations exchanges pickup and dropoff.
func (c *Criteria) SwapLocations() {
	c.pickup, c.dropoff = c.dropoff, c.pickup
}

func (c *Criteria) SetOnlyAvailable(only bool) {
	c.onlyAvailable = only
}

func (c *Criteria) SetSort(k SortKey) error {
	parsed, err := ParseSortKey(string(k))
	if err != nil {
		return err
	}
	c.sort = parsed
	return nil
}

func (c Criteria) Selected(f Field) []string {
	if !f.valid() {
		return nil
	}
	return slices.Clone(c.selections[f-1])
}

func (c Criteria) Capacities() []vehicle.SeatBand { return slices.Clone(c.capacities) }
func (c Criteria) Pickup() string                 { return c.pickup }
func (c Criteria) Dropoff() string                { return c.dropoff }
func (c Criteria) OnlyAvailable() bool            { return c.onlyAvailable }

func (c Criteria) Price() PriceRange {
	if !c.priceSet {
		return Unbounded
	}
	return c.price
}

func (c Criteria) Sort() SortKey {
	if c.sort == "" {
		return SortPriceAsc
	}
	return c.sort
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return len(c.Predicates()) == 0
}

// Key is a canonical encoding: equal criteria produce equal keys.
func (c Criteria) Key() string {
	var b strings.Builder
	for _, f := range Fields {
		b.WriteString(f.String())
		b.WriteByte('=')
		b.WriteString(strings.Join(c.selections[f-1], ","))
		b.WriteByte(';')
	}
	b.WriteString("seats=")
	for i, s := range c.capacities {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	price := c.Price()
	fmt.Fprintf(&b, ";price=%v..%v;pickup=%s;dropoff=%s;available=%t;sort=%s",
		price.Min, price.Max,
		vehicle.NormalizeLocation(c.pickup), vehicle.NormalizeLocation(c.dropoff),
		c.onlyAvailable, c.Sort())
	return b.String()
}

// Hints derives the coarse server-side filters. Only single-valued selections
// become substring hints so the server result stays a superset. The pickup
// hint drops any coordinate suffix since the engine matches on the name.
func (c Criteria) Hints() vehicle.Hints {
	var h vehicle.Hints
	if brands := c.selections[FieldBrand-1]; len(brands) == 1 {
		h.Brand = brands[0]
	}
	if types := c.selections[FieldType-1]; len(types) == 1 {
		h.Type = types[0]
	}
	if loc, ok := vehicle.ParseLocation(c.pickup); ok {
		h.Location = loc.Name()
	}
	price := c.Price()
	if price.Min > 0 {
		lo := price.Min
		h.MinPrice = &lo
	}
	if !math.IsInf(price.Max, 1) {
		hi := price.Max
		h.MaxPrice = &hi
	}
	return h
}
