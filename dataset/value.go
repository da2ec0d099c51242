package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	Missing Kind = iota
	Number
	Text
	List
)

// Value is the tagged cell type for every collection. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Num   float64
	Str   string
	Items []Value
}

func NewMissing() Value {
	return Value{Kind: Missing}
}

// NewNumber folds NaN into the missing sentinel so that a missing marker
// can never masquerade as a real number downstream.
func NewNumber(f float64) Value {
	if math.IsNaN(f) {
		return NewMissing()
	}
	return Value{Kind: Number, Num: f}
}

func NewText(s string) Value {
	return Value{Kind: Text, Str: s}
}

func NewList(items []Value) Value {
	return Value{Kind: List, Items: items}
}

func (v Value) IsMissing() bool {
	return v.Kind == Missing
}

// AsFloat interprets the value as a number. Numeric text counts.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case Number:
		return v.Num, true
	case Text:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Key is a collision-free identity string used for deduplication.
// The kind prefix keeps Number(1) and Text("1") distinct.
func (v Value) Key() string {
	switch v.Kind {
	case Number:
		return "n:" + strconv.FormatFloat(v.Num, 'g', -1, 64)
	case Text:
		return "t:" + v.Str
	case List:
		keys := make([]string, len(v.Items))
		for i, item := range v.Items {
			keys[i] = item.Key()
		}
		return "l:[" + strings.Join(keys, ",") + "]"
	default:
		return "m"
	}
}

func (v Value) Equal(other Value) bool {
	return v.Key() == other.Key()
}

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case Text:
		return v.Str
	case List:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "none"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Number:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.Num)
	case Text:
		return json.Marshal(v.Str)
	case List:
		if v.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Items)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &ParseError{Format: "json", Reason: "empty value"}
	}
	switch data[0] {
	case 'n':
		*v = NewMissing()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &ParseError{Format: "json", Reason: err.Error()}
		}
		*v = NewText(s)
		return nil
	case '[':
		var items []Value
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = NewList(items)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return &ParseError{Format: "json", Reason: err.Error()}
		}
		*v = NewText(strconv.FormatBool(b))
		return nil
	case '{':
		return &ParseError{Format: "json", Reason: "nested objects are not supported inside values"}
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return &ParseError{Format: "json", Reason: fmt.Sprintf("bad number %q", data)}
		}
		*v = NewNumber(f)
		return nil
	}
}
