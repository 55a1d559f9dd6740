package models

import "encoding/json"

// NullableString is a patch field for a nullable column. Set reports whether the key was
// present in the payload; a present null clears the column.
type NullableString struct {
	Set   bool
	Value *string
}

func NewNullableString(v string) NullableString {
	return NullableString{Set: true, Value: &v}
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// column is the value written for a present field: the string, or SQL NULL.
func (n NullableString) column() any {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}
