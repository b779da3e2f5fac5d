package query

import (
	"encoding/json"
	"strings"

	"catalogo/internal/domain"
)

// ParseFilterParam decodes the filter query param. The param is optional
// and carries either one JSON object or a JSON array of objects.
func ParseFilterParam(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return None(), nil
	}

	switch raw[0] {
	case '{':
		var spec FilterSpec
		if err := json.Unmarshal([]byte(raw), &spec); err != nil || spec.Column == "" {
			return Filter{}, domain.ValidationError{Msg: "Filter inválido.", Err: err}
		}
		return Single(spec.Column, spec.Value), nil
	case '[':
		var specs []FilterSpec
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			return Filter{}, domain.ValidationError{Msg: "Filter inválido.", Err: err}
		}
		for _, spec := range specs {
			if spec.Column == "" {
				return Filter{}, domain.ValidationError{Msg: "Filter inválido."}
			}
		}
		return Many(specs...), nil
	default:
		return Filter{}, domain.ValidationError{Msg: "Filter inválido."}
	}
}

// ParseOrderParam decodes the mandatory order query param, a JSON object
// {"column":...,"sort":"asc"|"desc"}.
func ParseOrderParam(raw string) (Order, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Order{}, domain.ValidationError{Msg: "Order inválido."}
	}

	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil || o.Column == "" {
		return Order{}, domain.ValidationError{Msg: "Order inválido.", Err: err}
	}
	if o.Sort != "asc" && o.Sort != "desc" {
		return Order{}, domain.ValidationError{Field: "sort", Msg: "Order inválido."}
	}
	return o, nil
}
