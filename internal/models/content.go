package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind tags a top-level value of a structured document.
type ValueKind int

const (
	OpaqueValue ValueKind = iota
	StringValue
	StringListValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case StringListValue:
		return "string_list"
	default:
		return "opaque"
	}
}

// Value is one classified member value. Raw always holds the encoded value as
// it appeared in the source document.
type Value struct {
	Kind ValueKind
	Str  string
	List []string
	Raw  json.RawMessage
}

// Member is a key/value pair of a structured document.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose members keep their source order.
type Object struct {
	Members []Member
}

// MarshalJSON writes the members in source order with their original values.
func (o *Object) MarshalJSON() ([]byte, error) {
	fields := make(Fields, 0, len(o.Members))
	for _, m := range o.Members {
		fields = append(fields, Field{Key: m.Key, Value: m.Value.Raw})
	}
	return fields.MarshalJSON()
}

// Field is one entry of an ordered JSON object.
type Field struct {
	Key   string
	Value any
}

// Fields encodes as a JSON object with keys in slice order.
type Fields []Field

func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", field.Key, err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseObject decodes raw as a JSON object. ok is false when raw is not
// valid JSON or is valid JSON of another kind (array, scalar).
// A repeated key keeps its first position and takes the last value.
func ParseObject(raw []byte) (obj *Object, ok bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) || len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, false, fmt.Errorf("read object start: %w", err)
	}

	obj = &Object{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false, fmt.Errorf("read object key: %w", err)
		}
		key, isString := tok.(string)
		if !isString {
			return nil, false, fmt.Errorf("unexpected object key token %v", tok)
		}
		var rawValue json.RawMessage
		if err := dec.Decode(&rawValue); err != nil {
			return nil, false, fmt.Errorf("read value for %q: %w", key, err)
		}
		value := Classify(rawValue)
		if i, seen := index[key]; seen {
			obj.Members[i].Value = value
			continue
		}
		index[key] = len(obj.Members)
		obj.Members = append(obj.Members, Member{Key: key, Value: value})
	}
	return obj, true, nil
}

// Classify decides the kind of an encoded JSON value once, so later code can
// switch on Kind instead of re-inspecting the value.
func Classify(raw json.RawMessage) Value {
	v := Value{Kind: OpaqueValue, Raw: raw}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return v
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			v.Kind = StringValue
			v.Str = s
		}
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return v
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			s, isString := item.(string)
			if !isString {
				return v
			}
			list = append(list, s)
		}
		v.Kind = StringListValue
		v.List = list
	}
	return v
}
