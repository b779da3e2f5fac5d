// Package query translates the generic filter/order shape accepted by the
// API into SQL fragments. Only equality filters and single-column ordering
// exist in this design; anything else is rejected at the boundary.
package query

import (
	"strings"

	"catalogo/internal/domain"
)

// FilterSpec restricts one column to one value (implicit equality).
type FilterSpec struct {
	Column string `json:"column"`
	Value  any    `json:"value"`
}

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterSingle
	FilterMany
)

// Filter is the tagged single-or-array union coming from the filter query
// param: absent, one spec, or an ordered AND-combined sequence of specs.
type Filter struct {
	Kind  FilterKind
	Spec  FilterSpec
	Specs []FilterSpec
}

func None() Filter {
	return Filter{Kind: FilterNone}
}

func Single(column string, value any) Filter {
	return Filter{Kind: FilterSingle, Spec: FilterSpec{Column: column, Value: value}}
}

func Many(specs ...FilterSpec) Filter {
	return Filter{Kind: FilterMany, Specs: specs}
}

// Order is the single-column sort directive. Sort is case-sensitive
// "asc" or "desc".
type Order struct {
	Column string `json:"column"`
	Sort   string `json:"sort"`
}

// Translator maps exposed attribute names to SQL column names. Anything
// outside the map never reaches the generated SQL.
type Translator struct {
	Columns map[string]string
}

// Translate builds the WHERE fragment (without the WHERE keyword) and its
// args. Specs are AND-joined in input order so generated SQL stays
// reproducible. An empty fragment means match-all.
func (t Translator) Translate(f Filter) (string, []any, error) {
	var specs []FilterSpec
	switch f.Kind {
	case FilterNone:
		return "", nil, nil
	case FilterSingle:
		specs = []FilterSpec{f.Spec}
	case FilterMany:
		if len(f.Specs) == 0 {
			return "", nil, nil
		}
		specs = f.Specs
	default:
		return "", nil, domain.ValidationError{Msg: "Filter inválido."}
	}

	parts := make([]string, 0, len(specs))
	args := make([]any, 0, len(specs))
	for _, spec := range specs {
		col, err := t.column(spec.Column)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, col+" = ?")
		args = append(args, spec.Value)
	}
	return strings.Join(parts, " AND "), args, nil
}

// TranslateOrder builds the ORDER BY fragment. Order is assumed
// pre-validated at the boundary, but unknown columns and sort tokens are
// still rejected here instead of defaulting.
func (t Translator) TranslateOrder(o Order) (string, error) {
	col, err := t.column(o.Column)
	if err != nil {
		return "", err
	}
	switch o.Sort {
	case "asc":
		return "ORDER BY " + col + " ASC", nil
	case "desc":
		return "ORDER BY " + col + " DESC", nil
	default:
		return "", domain.ValidationError{Field: "sort", Msg: "Order inválido."}
	}
}

func (t Translator) column(name string) (string, error) {
	col, ok := t.Columns[name]
	if !ok {
		return "", domain.ValidationError{Field: name, Msg: "Filter inválido."}
	}
	return col, nil
}
