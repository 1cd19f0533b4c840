package types

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Int is an integer that accepts both JSON numbers and numeric strings,
// as browsers send the values of number inputs as strings.
type Int int

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Values that are not integers return a *json.UnmarshalTypeError, which the
// JSON decoder annotates with the name of the field.
func (i *Int) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" {
		return nil
	}

	kind := "number"
	if unquoted, err := strconv.Unquote(value); err == nil {
		kind = "string"
		value = strings.TrimSpace(unquoted)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return &json.UnmarshalTypeError{Value: kind + " " + string(data), Type: reflect.TypeOf(0)}
	}

	*i = Int(n)
	return nil
}

// IntPtr converts an optional Int to an optional int.
func IntPtr(i *Int) *int {
	if i == nil {
		return nil
	}

	n := int(*i)
	return &n
}

// IntOf converts an optional int to an optional Int.
func IntOf(i *int) *Int {
	if i == nil {
		return nil
	}

	n := Int(*i)
	return &n
}
