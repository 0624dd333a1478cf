package resultjson

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// optFloat decodes a JSON number or numeric string. Null, absent and
// malformed values stay unset instead of failing the whole document.
type optFloat struct {
	v   float64
	set bool
}

func (f *optFloat) UnmarshalJSON(b []byte) error {
	*f = optFloat{}
	v, ok := scalarFloat(b)
	if ok {
		*f = optFloat{v: v, set: true}
	}
	return nil
}

func (f optFloat) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.v
	return &v
}

func (f optFloat) orZero() float64 { return f.v }

// optInt decodes an integral JSON number or numeric string.
type optInt struct {
	v   int
	set bool
}

func (i *optInt) UnmarshalJSON(b []byte) error {
	*i = optInt{}
	v, ok := scalarFloat(b)
	if ok && v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
		*i = optInt{v: int(v), set: true}
	}
	return nil
}

func (i optInt) ptr() *int {
	if !i.set {
		return nil
	}
	v := i.v
	return &v
}

// flexString accepts strings and numbers (vehicle ids are sometimes numeric).
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	*s = flexString(scalarText(b))
	return nil
}

// flexSequence is a route sequence rendered as a string. Array sequences
// are joined with "-".
type flexSequence struct {
	v   string
	set bool
}

func (s *flexSequence) UnmarshalJSON(b []byte) error {
	*s = flexSequence{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return nil
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			parts = append(parts, scalarText(it))
		}
		*s = flexSequence{v: strings.Join(parts, "-"), set: true}
		return nil
	}

	*s = flexSequence{v: scalarText(b), set: true}
	return nil
}

func (s flexSequence) ptr() *string {
	if !s.set {
		return nil
	}
	v := s.v
	return &v
}

// scalarText renders a JSON scalar as text: strings unquoted, numbers and
// booleans verbatim, null and composites as "".
func scalarText(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return ""
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(b)
	}
}

func scalarFloat(b []byte) (float64, bool) {
	text := strings.TrimSpace(scalarText(b))
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// lenient decodes a T, leaving it unset when the value is null or has the
// wrong JSON shape.
type lenient[T any] struct {
	v   T
	set bool
}

func (l *lenient[T]) UnmarshalJSON(b []byte) error {
	*l = lenient[T]{}
	if isNull(b) {
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*l = lenient[T]{v: v, set: true}
	return nil
}

// lenientList decodes a JSON array element by element. A value that is not
// an array leaves the list unset; elements that fail to decode are dropped.
type lenientList[T any] struct {
	items []T
	set   bool
}

func (l *lenientList[T]) UnmarshalJSON(b []byte) error {
	*l = lenientList[T]{}
	if isNull(b) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		items = append(items, v)
	}
	*l = lenientList[T]{items: items, set: true}
	return nil
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || string(b) == "null"
}
