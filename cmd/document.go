package cmd

import (
	"bytes"

	"github.com/francoispqt/gojay"
)

type document map[string]interface{}

// UnmarshalJSONObject decodes an object entry
func (d document) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	d[key] = value
	return nil
}

// NKeys returns 0 to decode all keys
func (d document) NKeys() int {
	return 0
}

type list []interface{}

// UnmarshalJSONArray decodes an array element
func (l *list) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	*l = append(*l, value)
	return nil
}

// decodeJSON decodes a JSON document, top level scalars are YAML compatible
func decodeJSON(data []byte) (interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	switch data[0] {
	case '{':
		ret := document{}
		if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
			return nil, err
		}
		return map[string]interface{}(ret), nil
	case '[':
		ret := list{}
		if err := gojay.UnmarshalJSONArray(data, &ret); err != nil {
			return nil, err
		}
		return []interface{}(ret), nil
	}
	return parseLiteral(string(data))
}
