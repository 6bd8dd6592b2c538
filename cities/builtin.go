package cities

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citytour/geom"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Table maps a city count to the set with that many cities.
type Table map[int]Set

// tableDoc is the on-disk shape of a table.
type tableDoc struct {
	Sets []struct {
		Count  int    `yaml:"count"`
		Name   string `yaml:"name"`
		Cities []struct {
			Name string  `yaml:"name"`
			X    float64 `yaml:"x"`
			Y    float64 `yaml:"y"`
		} `yaml:"cities"`
	} `yaml:"sets"`
}

// Builtin decodes the shipped city table. Each call returns a fresh Table.
func Builtin() (Table, error) {
	return ParseTable(builtinYAML)
}

// ParseTable decodes a YAML city table. Every entry's count must equal
// its number of cities, counts must be unique, and each set must validate.
func ParseTable(data []byte) (Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	t := make(Table, len(doc.Sets))
	for _, entry := range doc.Sets {
		if entry.Count != len(entry.Cities) {
			return nil, fmt.Errorf("set %q: count %d but %d cities: %w",
				entry.Name, entry.Count, len(entry.Cities), ErrMalformedTable)
		}
		if _, dup := t[entry.Count]; dup {
			return nil, fmt.Errorf("count %d listed twice: %w", entry.Count, ErrMalformedTable)
		}

		s := Set{Name: entry.Name, Cities: make([]City, len(entry.Cities))}
		if s.Name == "" {
			s.Name = fmt.Sprintf("table-%d", entry.Count)
		}
		for i, c := range entry.Cities {
			name := c.Name
			if name == "" {
				name = cityName(i)
			}
			s.Cities[i] = City{Name: name, Location: geom.Pt(c.X, c.Y)}
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		t[entry.Count] = s
	}

	return t, nil
}

// Lookup returns the set with exactly count cities.
func (t Table) Lookup(count int) (Set, error) {
	s, ok := t[count]
	if !ok {
		return Set{}, fmt.Errorf("count %d (have %v): %w", count, t.Counts(), ErrUnknownCount)
	}

	return s, nil
}

// Counts returns the available city counts in ascending order.
func (t Table) Counts() []int {
	return slices.Sorted(maps.Keys(t))
}
