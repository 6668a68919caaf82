package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// QuotationRequest is the payload of the quotation form. Nothing here is
// hard-required: missing values degrade to defaults instead of rejecting,
// since the form itself is the only caller.
type QuotationRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	EventDate  string     `json:"event_date"`
	Note       string     `json:"note"`
	Selections Selections `json:"selections"`
	Total      Amount     `json:"total"`
}

// Amount is a lenient monetary value. The form submits totals as numbers or
// display strings ("12,345", "₹12345"); anything unparseable becomes 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*a = Amount(n)
	}
	return nil
}

// Selections maps a section name (e.g. "Wedding", "Album") to its block of
// chosen services.
type Selections map[string]SelectionBlock

// BlockShape tags how a selection block is structured.
type BlockShape int

const (
	// ShapeEmpty marks a block with no usable entries; it is skipped.
	ShapeEmpty BlockShape = iota
	// ShapeFlat maps service name directly to quantity.
	ShapeFlat
	// ShapePerPerson maps person name to a nested service→quantity map.
	ShapePerPerson
	// ShapeUnknown marks a non-empty block that fits neither shape; it
	// renders as a heading with an empty table rather than failing.
	ShapeUnknown
)

// SelectionBlock is the tagged union of the two block shapes the form can
// submit. The shape is decided here, at decode time, from the JSON value
// kinds rather than from whichever entry a map iteration happens to yield
// first: any object value makes the block per-person, otherwise any numeric
// value makes it flat.
type SelectionBlock struct {
	Shape     BlockShape
	Flat      map[string]float64
	PerPerson map[string]map[string]float64
}

func (b *SelectionBlock) UnmarshalJSON(data []byte) error {
	*b = SelectionBlock{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) == 0 {
		// Malformed or empty blocks are skipped silently.
		return nil
	}

	perPerson := false
	numeric := false
	for _, v := range raw {
		if isJSONObject(v) {
			perPerson = true
			break
		}
		if _, ok := coerceQuantity(v); ok {
			numeric = true
		}
	}

	switch {
	case perPerson:
		b.Shape = ShapePerPerson
		b.PerPerson = make(map[string]map[string]float64, len(raw))
		for person, v := range raw {
			var services map[string]json.RawMessage
			if err := json.Unmarshal(v, &services); err != nil {
				// Non-mapping values for a person are skipped.
				continue
			}
			row := make(map[string]float64, len(services))
			for service, q := range services {
				qty, _ := coerceQuantity(q)
				row[service] = qty
			}
			b.PerPerson[person] = row
		}
	case numeric:
		b.Shape = ShapeFlat
		b.Flat = make(map[string]float64, len(raw))
		for service, q := range raw {
			qty, _ := coerceQuantity(q)
			b.Flat[service] = qty
		}
	default:
		b.Shape = ShapeUnknown
	}
	return nil
}

// Empty reports whether the block should be skipped entirely.
func (b SelectionBlock) Empty() bool {
	return b.Shape == ShapeEmpty
}

// coerceQuantity reads a quantity that may arrive as a JSON number or a
// numeric string. The bool reports whether the value was numeric at all;
// the quantity defaults to 0 either way.
func coerceQuantity(data json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func isJSONObject(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
