package domain

import (
	"bytes"
	"encoding/json"
)

// Value is a decoded JSON value: nil, bool, string, json.Number, []Value or *Object.
type Value = any

type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that keeps its members in the order they were added.
// Members must only be changed through Set.
type Object struct {
	Members []Member

	index map[string]int
}

func NewObject() *Object {
	return &Object{}
}

// Set appends a new member, or replaces the value of an existing key
// without moving it.
func (o *Object) Set(key string, value Value) {
	if o.index == nil {
		o.index = make(map[string]int, len(o.Members)+1)
		for i, m := range o.Members {
			o.index[m.Key] = i
		}
	}

	if i, ok := o.index[key]; ok {
		o.Members[i].Value = value
		return
	}

	o.index[key] = len(o.Members)
	o.Members = append(o.Members, Member{Key: key, Value: value})
}

func (o *Object) Get(key string) (Value, bool) {
	if o.index != nil {
		i, ok := o.index[key]
		if !ok {
			return nil, false
		}
		return o.Members[i].Value, true
	}

	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.Members))
	for _, m := range o.Members {
		keys = append(keys, m.Key)
	}
	return keys
}

func (o *Object) Len() int {
	return len(o.Members)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (o *Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}
