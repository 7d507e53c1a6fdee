package models

import "github.com/goccy/go-json"

// Optional is a field that remembers whether it appeared in the payload at
// all. Plain pointers cannot tell "absent" from "present with null", which
// partial updates need for nullable fields like collection_id.
type Optional[T any] struct {
	Value T
	Set   bool
}

// UnmarshalJSON records that the field was present, then decodes into Value.
// A JSON null leaves Value at its zero value with Set=true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}
