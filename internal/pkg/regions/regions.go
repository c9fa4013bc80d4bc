package regions

import (
	"sort"
	"strings"
)

// Coordinate is a WGS84 point used to place a region on the map.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Table holds the reference data the pipeline normalizes against: the alias
// remap collapsing legacy area-name variants onto one canonical name, and the
// coordinates for every region the map can place. A Table is immutable after
// construction so it can be shared across sessions without locking.
type Table struct {
	aliases map[string]string
	coords  map[string]Coordinate
}

// NewTable builds a Table from an alias remap and a coordinate set. The input
// maps are copied; callers may reuse or mutate them afterwards.
func NewTable(aliases map[string]string, coords map[string]Coordinate) *Table {
	t := &Table{
		aliases: make(map[string]string, len(aliases)),
		coords:  make(map[string]Coordinate, len(coords)),
	}
	for k, v := range aliases {
		t.aliases[k] = v
	}
	for k, v := range coords {
		t.coords[k] = v
	}
	return t
}

// Default returns the production reference data for Lebanon.
func Default() *Table {
	return NewTable(
		map[string]string{
			"North Governorate": "Tripoli",
			"North Lebanon":     "Tripoli",
		},
		map[string]Coordinate{
			"Beqaa Valley":      {Lat: 33.8467, Lon: 35.9020},
			"South Governorate": {Lat: 33.2721, Lon: 35.2033},
			"Beirut":            {Lat: 33.8938, Lon: 35.5018},
			"Mount Lebanon":     {Lat: 33.8333, Lon: 35.5833},
			"Tripoli":           {Lat: 34.4367, Lon: 35.8308},
			"Nabatieh":          {Lat: 33.3772, Lon: 35.4839},
			"Baalbek-Hermel":    {Lat: 34.1796, Lon: 36.1508},
			"Akkar":             {Lat: 34.5431, Lon: 36.0771},
		},
	)
}

// Canonical applies the alias remap to an already-readable region name.
// Names without an alias entry pass through unchanged, so applying Canonical
// twice yields the same result as applying it once.
func (t *Table) Canonical(name string) string {
	if mapped, ok := t.aliases[name]; ok {
		return mapped
	}
	return name
}

// CanonicalFromRef derives the canonical region name from a source refArea
// identifier: the final path segment, underscores replaced with spaces, then
// the alias remap.
func (t *Table) CanonicalFromRef(ref string) string {
	segment := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		segment = ref[i+1:]
	}
	return t.Canonical(strings.ReplaceAll(segment, "_", " "))
}

// Coords looks up the map position for a canonical region name.
func (t *Table) Coords(region string) (Coordinate, bool) {
	c, ok := t.coords[region]
	return c, ok
}

// Known reports whether the region can be placed on the map.
func (t *Table) Known(region string) bool {
	_, ok := t.coords[region]
	return ok
}

// Regions returns the mappable region names in sorted order.
func (t *Table) Regions() []string {
	names := make([]string, 0, len(t.coords))
	for name := range t.coords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
