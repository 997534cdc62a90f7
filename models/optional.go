package models

import "encoding/json"

// Optional is a JSON field that records whether it appeared in the payload
// at all. Set becomes true only when the field was present; Valid is false
// when the payload carried an explicit null.
type Optional[T any] struct {
	Value T
	Valid bool
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
