package model

import (
	"encoding/json"
	"math"
	"reflect"
)

// WholeNumber is an int that also accepts JSON numbers like 5.0, as long as
// they have no fractional part.
type WholeNumber int

func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	var num json.Number
	if len(data) > 0 && data[0] == '"' {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(0)}
	}
	if err := json.Unmarshal(data, &num); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(0)}
	}
	if i, err := num.Int64(); err == nil {
		*n = WholeNumber(i)
		return nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return &json.UnmarshalTypeError{Value: "number " + num.String(), Type: reflect.TypeOf(0)}
	}
	*n = WholeNumber(f)
	return nil
}

// IntPtr converts to the *int stored on rows.
func (n *WholeNumber) IntPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
