// Package tank holds the station's dip charts and the tank types they belong to.
package tank

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownType is returned when a tank type is not registered.
var ErrUnknownType = errors.New("unknown tank type")

// Type identifies a tank geometry.
type Type string

const (
	Tank30K Type = "30000L"
	Tank15K Type = "15000L"
)

// Spec describes a registered tank.
type Spec struct {
	Type     Type
	Label    string
	Capacity float64
	Aliases  []string
	Table    *Table
}

var registry = map[Type]Spec{
	Tank30K: {
		Type:     Tank30K,
		Label:    "Tanque 30.000L",
		Capacity: 31309,
		Aliases:  []string{"30000", "30k"},
		Table:    NewTable(table30k),
	},
	Tank15K: {
		Type:     Tank15K,
		Label:    "Tanque 15.000L",
		Capacity: 15621,
		Aliases:  []string{"15000", "15k"},
		Table:    NewTable(table15k),
	},
}

// Lookup returns the registered spec for t.
func Lookup(t Type) (Spec, bool) {
	spec, ok := registry[t]
	return spec, ok
}

// Get is Lookup returning ErrUnknownType for unregistered types.
func Get(t Type) (Spec, error) {
	spec, ok := registry[t]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	return spec, nil
}

// Types lists registered tank types, largest capacity first.
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return registry[out[i]].Capacity > registry[out[j]].Capacity
	})
	return out
}

// ParseType resolves a user supplied name such as "30000L", "30000" or "15k".
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, spec := range registry {
		if name == strings.ToLower(string(t)) {
			return t, nil
		}
		for _, alias := range spec.Aliases {
			if name == alias {
				return t, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) String() string {
	return string(t)
}
