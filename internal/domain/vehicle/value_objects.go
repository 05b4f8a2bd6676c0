package vehicle

import (
	"fmt"
	"strconv"
	"strings"
)

type GeoPoint struct {
	Lat float64
	Lng float64
}

// Location is a serviceable place. Catalog rows sometimes carry coordinates as
// a suffix, e.g. "Mannheim (49.489,8.467)".
type Location struct {
	name  string
	point *GeoPoint
}

func ParseLocation(raw string) (Location, bool) {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return Location{}, false
	}

	if open := strings.LastIndex(s, "("); open > 0 && strings.HasSuffix(s, ")") {
		if p, ok := parsePoint(s[open+1 : len(s)-1]); ok {
			name := strings.TrimSpace(s[:open])
			if name != "" {
				return Location{name: name, point: &p}, true
			}
		}
	}
	return Location{name: s}, true
}

func parsePoint(s string) (GeoPoint, bool) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return GeoPoint{}, false
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil || la < -90 || la > 90 {
		return GeoPoint{}, false
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil || ln < -180 || ln > 180 {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: la, Lng: ln}, true
}

func (l Location) Name() string { return l.name }

func (l Location) Point() (GeoPoint, bool) {
	if l.point == nil {
		return GeoPoint{}, false
	}
	return *l.point, true
}

func (l Location) Key() string { return NormalizeLocation(l.name) }

func (l Location) String() string {
	if l.point == nil {
		return l.name
	}
	return fmt.Sprintf("%s (%s,%s)", l.name,
		strconv.FormatFloat(l.point.Lat, 'f', -1, 64),
		strconv.FormatFloat(l.point.Lng, 'f', -1, 64))
}

// NormalizeText is the comparison form of free-text attributes: trimmed,
// inner whitespace collapsed, lower-cased.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizeLocation is the canonical comparison key of a location name.
func NormalizeLocation(name string) string {
	return NormalizeText(name)
}

// LocationSet is the one canonical representation of serviceable locations.
// Entries keep the first spelling seen for a key.
type LocationSet struct {
	order []string
	byKey map[string]Location
}

// NewLocationSet accepts any mix of single names and comma-joined lists.
func NewLocationSet(raw ...string) LocationSet {
	set := LocationSet{byKey: map[string]Location{}}
	for _, r := range raw {
		for _, part := range splitLocations(r) {
			loc, ok := ParseLocation(part)
			if !ok {
				continue
			}
			key := loc.Key()
			if _, dup := set.byKey[key]; dup {
				continue
			}
			set.order = append(set.order, key)
			set.byKey[key] = loc
		}
	}
	return set
}

// splitLocations splits on commas outside parentheses so coordinate
// suffixes survive.
func splitLocations(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func (s LocationSet) Len() int { return len(s.order) }

func (s LocationSet) Contains(name string) bool {
	loc, ok := ParseLocation(name)
	if !ok {
		return false
	}
	_, found := s.byKey[loc.Key()]
	return found
}

func (s LocationSet) Locations() []Location {
	out := make([]Location, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}

func (s LocationSet) Names() []string {
	out := make([]string, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k].name)
	}
	return out
}

// Raw renders the set back into catalog form, coordinates included.
func (s LocationSet) Raw() []string {
	out := make([]string, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k].String())
	}
	return out
}

func (s LocationSet) First() (Location, bool) {
	if len(s.order) == 0 {
		return Location{}, false
	}
	return s.byKey[s.order[0]], true
}
