package ingredients

import (
	"database/sql/driver"
	"fmt"
)

// List stores an ingredient list in a single text column using the
// delimited encoding.
type List []Ingredient

// Value implements the driver.Valuer interface
func (l List) Value() (driver.Value, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return Encode(l), nil
}

// Scan implements the sql.Scanner interface
func (l *List) Scan(value interface{}) error {
	var text string
	switch v := value.(type) {
	case nil:
		*l = List{}
		return nil
	case []byte:
		text = string(v)
	case string:
		text = v
	default:
		return fmt.Errorf("ingredients: cannot scan %T into List", value)
	}

	decoded, err := Decode(text)
	if err != nil {
		return err
	}
	*l = List(decoded)
	return nil
}

// Cost returns the total cost of the list.
func (l List) Cost() float64 {
	return TotalCost(l)
}
