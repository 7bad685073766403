package errhound

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldErrors maps field names to their messages, preserving the order in
// which fields and messages were added. The zero value is empty and ready to use.
//
// A FieldErrors value shares its storage with plain copies of itself, so
// use Clone before adding to a copy. Values returned by this package are
// already independent.
type FieldErrors struct {
	order []string
	msgs  map[string][]string
}

// Add appends msg to field, creating the field's entry if absent.
// On a plain copy, Add also changes the original; use Clone first.
func (f *FieldErrors) Add(field, msg string) {
	if f.msgs == nil {
		f.msgs = make(map[string][]string)
	}
	if _, ok := f.msgs[field]; !ok {
		f.order = append(f.order, field)
	}
	f.msgs[field] = append(f.msgs[field], msg)
}

// Get returns a copy of the messages recorded for field.
func (f FieldErrors) Get(field string) []string {
	msgs, ok := f.msgs[field]
	if !ok {
		return nil
	}
	return append([]string(nil), msgs...)
}

// Fields returns field names in insertion order.
func (f FieldErrors) Fields() []string {
	return append([]string(nil), f.order...)
}

// Len returns the number of fields with at least one message.
func (f FieldErrors) Len() int { return len(f.order) }

// Clone returns a deep copy.
func (f FieldErrors) Clone() FieldErrors {
	var c FieldErrors
	for _, field := range f.order {
		for _, msg := range f.msgs[field] {
			c.Add(field, msg)
		}
	}
	return c
}

// Map returns an unordered copy.
func (f FieldErrors) Map() map[string][]string {
	m := make(map[string][]string, len(f.order))
	for _, field := range f.order {
		m[field] = f.Get(field)
	}
	return m
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (f FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.msgs[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string arrays, keeping document order.
func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("errhound: field errors must be a JSON object, got %v", tok)
	}

	var out FieldErrors
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("errhound: unexpected field name %v", tok)
		}
		var msgs []string
		if err := dec.Decode(&msgs); err != nil {
			return fmt.Errorf("errhound: field %q: %w", field, err)
		}
		for _, msg := range msgs {
			out.Add(field, msg)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}
