package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque, server-assigned record identifier. Backends disagree
// on the wire type (json-server hands out numbers, ours hands out
// UUIDs), so it accepts either and always re-encodes as a string.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("id: cannot decode %s", strconv.Quote(string(b)))
}

// Item is the domain model for a todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
