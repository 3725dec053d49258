package ingredients

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ParseCell reads an ingredients cell from an imported template. Cells
// holding a JSON array of ingredient objects are accepted alongside the
// delimited form.
func ParseCell(text string) ([]Ingredient, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		var list []Ingredient
		if err := json.Unmarshal([]byte(text), &list); err != nil {
			return nil, fmt.Errorf("decode ingredients json: %w", err)
		}
		for i := range list {
			list[i].Name = strings.TrimSpace(list[i].Name)
			list[i].Unit = strings.TrimSpace(list[i].Unit)
		}
		if err := Validate(list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return Decode(text)
}

// Validate checks that every ingredient can be encoded and decoded
// losslessly.
func Validate(list []Ingredient) error {
	for i, ing := range list {
		fail := func(reason string) error {
			return &FormatError{Entry: i + 1, Text: ing.Name, Reason: reason}
		}
		switch {
		case strings.TrimSpace(ing.Name) == "":
			return fail("name is empty")
		case strings.TrimSpace(ing.Unit) == "":
			return fail("unit is empty")
		case strings.ContainsAny(ing.Name, fieldSeparator+entrySeparator):
			return fail(fmt.Sprintf("name cannot contain %q or %q", fieldSeparator, entrySeparator))
		case strings.ContainsAny(ing.Unit, fieldSeparator+entrySeparator):
			return fail(fmt.Sprintf("unit cannot contain %q or %q", fieldSeparator, entrySeparator))
		case !(ing.Quantity > 0) || math.IsInf(ing.Quantity, 0):
			return fail("quantity must be a positive number")
		}
		if c := ing.CostPerUnit; c != nil && (!(*c >= 0) || math.IsInf(*c, 0)) {
			return fail("cost per unit must be a non-negative number")
		}
	}
	return nil
}

// TotalCost sums quantity × cost per unit. Ingredients without a cost count
// as zero.
func TotalCost(list []Ingredient) float64 {
	var total float64
	for _, ing := range list {
		if ing.CostPerUnit != nil {
			total += ing.Quantity * *ing.CostPerUnit
		}
	}
	return total
}
