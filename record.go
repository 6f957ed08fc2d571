package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const (
	keyRun     = "run"
	keyType    = "type"
	keyEntropy = "entropy"
)

// Record is one decoded JSON object from a single input line.
// Numbers are kept as json.Number so cells reproduce the source text.
type Record map[string]interface{}

// Run returns the "run" value as a cell, empty when absent or null.
func (r Record) Run() string {
	return formatCell(r[keyRun])
}

// Type returns the "type" value as a cell, empty when absent or null.
func (r Record) Type() string {
	return formatCell(r[keyType])
}

// Entropy returns the entropy sequence. A missing or null key is an empty
// sequence, as is any value normalizeEntropy would not turn into an array.
func (r Record) Entropy() []interface{} {
	arr, _ := r[keyEntropy].([]interface{})
	return arr
}

// normalizeEntropy rewrites the entropy value into an array. A string
// becomes one element per character and an empty object an empty sequence.
// Numbers, booleans and non-empty objects have no elements to index and
// are rejected.
func (r Record) normalizeEntropy() error {
	v, present := r[keyEntropy]
	if !present {
		return nil
	}
	switch val := v.(type) {
	case nil, []interface{}:
		return nil
	case string:
		runes := []rune(val)
		chars := make([]interface{}, len(runes))
		for i, c := range runes {
			chars[i] = string(c)
		}
		r[keyEntropy] = chars
		return nil
	case map[string]interface{}:
		if len(val) == 0 {
			r[keyEntropy] = []interface{}{}
			return nil
		}
	}
	return fmt.Errorf("%q holds a %s, which has no indexed elements", keyEntropy, jsonKind(v))
}

// decodeRecord decodes a single line into a Record.
func decodeRecord(line []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// Anything after the first value is not part of the record
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %s", jsonKind(v))
	}
	return Record(obj), nil
}

// formatCell renders a decoded JSON value as a CSV cell.
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		// Nested arrays and objects are written back as compact JSON
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	default:
		return "object"
	}
}
