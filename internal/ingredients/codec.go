// Package ingredients encodes and decodes the single-cell ingredient list
// used by the recipe import template.
//
// A list is written as `name,quantity,unit[,costPerUnit]` entries joined
// with `;`, for example:
//
//	Chicken,500,g,0.02;Onion,100,g,0.01;Rice,150,g
//
// Names are not escaped. A name containing `,` or `;` cannot be represented
// and Decode rejects the resulting entry.
package ingredients

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	entrySeparator = ";"
	fieldSeparator = ","
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name        string   `json:"name"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"costPerUnit,omitempty"`
}

// Cost returns a pointer suitable for Ingredient.CostPerUnit.
func Cost(v float64) *float64 {
	return &v
}

// FormatError reports a malformed entry in an encoded ingredient list.
type FormatError struct {
	Entry  int // 1-based position among non-empty entries
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ingredient %d (%q): %s", e.Entry, e.Text, e.Reason)
}

// Encode joins the ingredients into one delimited field.
func Encode(list []Ingredient) string {
	entries := make([]string, 0, len(list))
	for _, ing := range list {
		fields := []string{ing.Name, formatNumber(ing.Quantity), ing.Unit}
		if ing.CostPerUnit != nil {
			fields = append(fields, formatNumber(*ing.CostPerUnit))
		}
		entries = append(entries, strings.Join(fields, fieldSeparator))
	}
	return strings.Join(entries, entrySeparator)
}

// Decode parses an encoded ingredient list. Empty entries are skipped; the
// first malformed entry aborts decoding with a *FormatError.
func Decode(text string) ([]Ingredient, error) {
	var list []Ingredient
	n := 0
	for _, raw := range strings.Split(text, entrySeparator) {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		n++
		ing, err := decodeEntry(n, entry)
		if err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, nil
}

// MustDecode is like Decode but panics on malformed input. It is meant for
// package-level fixtures built from literals.
func MustDecode(text string) []Ingredient {
	list, err := Decode(text)
	if err != nil {
		panic(fmt.Sprintf("ingredients: MustDecode(%q): %v", text, err))
	}
	return list
}

func decodeEntry(n int, entry string) (Ingredient, error) {
	fail := func(reason string) (Ingredient, error) {
		return Ingredient{}, &FormatError{Entry: n, Text: entry, Reason: reason}
	}

	tokens := strings.Split(entry, fieldSeparator)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	switch {
	case len(tokens) < 3:
		return fail(fmt.Sprintf("expected name,quantity,unit[,costPerUnit], got %d fields", len(tokens)))
	case len(tokens) > 4:
		return fail(fmt.Sprintf("too many fields (%d); names cannot contain %q or %q", len(tokens), fieldSeparator, entrySeparator))
	}

	ing := Ingredient{Name: tokens[0], Unit: tokens[2]}
	if ing.Name == "" {
		return fail("name is empty")
	}
	if ing.Unit == "" {
		return fail("unit is empty")
	}

	qty, err := parseNumber(tokens[1])
	if err != nil || qty <= 0 {
		return fail(fmt.Sprintf("quantity %q is not a positive number", tokens[1]))
	}
	ing.Quantity = qty

	if len(tokens) == 4 && tokens[3] != "" {
		cost, err := parseNumber(tokens[3])
		if err != nil || cost < 0 {
			return fail(fmt.Sprintf("cost per unit %q is not a non-negative number", tokens[3]))
		}
		ing.CostPerUnit = &cost
	}
	return ing, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
