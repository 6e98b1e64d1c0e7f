// Package record implements the keyed view shared by option records and
// source descriptors: a struct of optional JSON-tagged fields plus a side
// map of extra keys, serialized as one flat JSON object.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Extra holds keys that have no declared field, or whose value could not be
// stored in the declared field.
type Extra map[string]any

var (
	errInvalidJSON = errors.New("record: invalid JSON")
	errNotObject   = errors.New("record: not a JSON object")
)

var indentOptions = &pretty.Options{Width: 80, Indent: "    "}

// Marshal encodes v (which must not implement json.Marshaler itself) and
// appends the extra keys in lexical order after the declared fields. A set
// declared field wins over an extra entry of the same name.
func Marshal(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(extra) {
		path := gjson.Escape(key)
		if gjson.GetBytes(data, path).Exists() {
			continue
		}
		data, err = sjson.SetBytes(data, path, extra[key])
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Unmarshal decodes a JSON object into v (a pointer to struct). Declared keys
// populate their fields; undeclared keys, and values that do not fit their
// field, are collected into extra.
func Unmarshal(data []byte, v any, extra *Extra) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return errNotObject
	}
	rv := reflect.ValueOf(v).Elem()
	declared := fieldsOf(rv.Type())
	obj.ForEach(func(k, val gjson.Result) bool {
		key := k.String()
		if idx, ok := declared[key]; ok {
			p := reflect.New(rv.Field(idx).Type())
			if err := json.Unmarshal([]byte(val.Raw), p.Interface()); err == nil {
				rv.Field(idx).Set(p.Elem())
				return true
			}
		}
		if *extra == nil {
			*extra = Extra{}
		}
		(*extra)[key] = val.Value()
		return true
	})
	return nil
}

// Lookup returns the value stored under key in the encoded object.
func Lookup(data []byte, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	r := gjson.GetBytes(data, gjson.Escape(key))
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

// Map decodes the encoded object into a plain key-value mapping.
func Map(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	m := make(map[string]any)
	gjson.ParseBytes(data).ForEach(func(k, v gjson.Result) bool {
		m[k.String()] = v.Value()
		return true
	})
	return m, nil
}

// Keys returns the keys of the encoded object in their serialized order.
func Keys(data []byte) []string {
	var keys []string
	gjson.ParseBytes(data).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// Indent renders the encoded object with a four-space indent.
func Indent(data []byte) string {
	return strings.TrimRight(string(pretty.PrettyOptions(data, indentOptions)), "\n")
}

// String renders m with Indent. When m cannot be encoded the result is a
// fmt-style error marker rather than an empty object.
func String(m json.Marshaler) string {
	data, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%%!(marshal error: %v)", err)
	}
	return Indent(data)
}

// Query converts the encoded object into URL query parameters. Arrays become
// repeated keys; booleans render as true/false.
func Query(data []byte) url.Values {
	q := url.Values{}
	gjson.ParseBytes(data).ForEach(func(k, v gjson.Result) bool {
		if v.IsArray() {
			for _, item := range v.Array() {
				q.Add(k.String(), item.String())
			}
			return true
		}
		q.Add(k.String(), v.String())
		return true
	})
	return q
}

// Set assigns value to the field of v (a pointer to struct) whose JSON name
// is key. A nil value clears the key. Values that do not fit the declared
// field, and undeclared keys, are kept in extra. Set never fails; an empty
// key is ignored.
func Set(v any, extra *Extra, key string, value any) {
	if key == "" {
		return
	}
	rv := reflect.ValueOf(v).Elem()
	if idx, ok := fieldsOf(rv.Type())[key]; ok {
		field := rv.Field(idx)
		delete(*extra, key)
		if value == nil {
			field.Set(reflect.Zero(field.Type()))
			return
		}
		if assign(field, value) {
			return
		}
		field.Set(reflect.Zero(field.Type()))
	}
	if value == nil {
		delete(*extra, key)
		return
	}
	if *extra == nil {
		*extra = Extra{}
	}
	(*extra)[key] = value
}

func assign(field reflect.Value, value any) bool {
	val := reflect.ValueOf(value)
	ft := field.Type()
	if val.Type().AssignableTo(ft) {
		field.Set(val)
		return true
	}
	if ft.Kind() == reflect.Pointer && val.Type().AssignableTo(ft.Elem()) {
		p := reflect.New(ft.Elem())
		p.Elem().Set(val)
		field.Set(p)
		return true
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	p := reflect.New(ft)
	if err := json.Unmarshal(data, p.Interface()); err != nil {
		return false
	}
	field.Set(p.Elem())
	return true
}

var fieldCache sync.Map // reflect.Type -> map[string]int

func fieldsOf(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = i
	}
	fieldCache.Store(t, fields)
	return fields
}

func sortedKeys(extra Extra) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
