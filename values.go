package deepgram

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Bool returns a pointer to v, for optional option fields.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for optional option fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional option fields.
func Int(v int) *int { return &v }

// StringOrList holds either a single string or a list of strings and
// serializes back in whichever shape it was given.
type StringOrList struct {
	values []string
	list   bool
}

// One returns a single-string value.
func One(s string) *StringOrList {
	return &StringOrList{values: []string{s}}
}

// List returns a list value; it stays a JSON array even with one element.
func List(items ...string) *StringOrList {
	return &StringOrList{values: append([]string{}, items...), list: true}
}

// IsList reports whether the value was supplied as a list.
func (s StringOrList) IsList() bool { return s.list }

// Values returns the strings held, one element for a single string.
func (s StringOrList) Values() []string {
	return append([]string(nil), s.values...)
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.list {
		if s.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.values)
	}
	if len(s.values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(s.values[0])
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*s = StringOrList{values: items, list: true}
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*s = StringOrList{values: []string{one}}
	return nil
}

// BoolOrString holds either a boolean or a string, e.g. summarize=true or
// summarize="v2".
type BoolOrString struct {
	b     bool
	s     string
	isStr bool
}

func BoolValue(b bool) *BoolOrString { return &BoolOrString{b: b} }

func StringValue(s string) *BoolOrString { return &BoolOrString{s: s, isStr: true} }

func (v BoolOrString) MarshalJSON() ([]byte, error) {
	if v.isStr {
		return json.Marshal(v.s)
	}
	return json.Marshal(v.b)
}

func (v *BoolOrString) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolOrString{b: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = BoolOrString{s: s, isStr: true}
		return nil
	}
	return errors.New("deepgram: expected bool or string")
}
