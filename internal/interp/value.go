// Package interp implements the lil command language: value/list/hashmap
// storage, environments with lil's two-level scoping rule, the recursive-
// descent parser/substitution engine, the command evaluator, the integer
// expression evaluator, and the built-in command set.
package interp

import (
	"strconv"
	"strings"
)

// Value is an 8-bit clean byte string, the only data type lil scripts see.
// Integers, booleans and lists are all just particular textual shapes of a
// Value. Values are treated as immutable once constructed; callers that need
// to build one up incrementally use valueBuilder.
type Value struct {
	s string
}

// EmptyValue is the canonical empty string value.
var EmptyValue = &Value{}

// NewValue wraps a Go string as a Value.
func NewValue(s string) *Value {
	return &Value{s: s}
}

// NewInteger renders n as a decimal Value, matching lil_alloc_integer's
// plain "%zd" formatting (no leading zeros, sign only when negative).
func NewInteger(n int64) *Value {
	return &Value{s: strconv.FormatInt(n, 10)}
}

// NewBool renders a Go bool as the canonical lil truth values "1"/"0".
func NewBool(b bool) *Value {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}

// String returns the value's text, treating a nil receiver as empty --
// mirroring lil_to_string's `(val && val->l) ? val->d : ""`.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return v.s
}

// Len returns the byte length of the value.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.s)
}

// Clone returns an independent copy of v suitable for storing into a
// variable slot (lil_clone_value).
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	return &Value{s: v.s}
}

// Int parses the value the way lil_to_integer does: optional sign, then a
// "0x"/"0X" hex prefix, a bare leading "0" octal prefix, or decimal -- the
// classic simple_strtol(..., base 0) grammar. Unparseable input yields 0,
// matching the original's "stop at first bad character" tolerance.
func (v *Value) Int() int64 {
	s := v.String()
	i, neg := 0, false
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base := 10
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	} else if i < len(s) && s[i] == '0' {
		base = 8
	}
	var n int64
	for i < len(s) {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			break
		}
		n = n*int64(base) + int64(d)
		i++
	}
	if neg {
		n = -n
	}
	return n
}

func digitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// Bool implements lil_to_boolean's idiosyncratic truthiness rule: the empty
// string is false; a string made up only of '0' and at most one '.' is
// false (so "0", "0.0", "00" are false but "0.0.0" is true); anything else
// is true.
func (v *Value) Bool() bool {
	s := v.String()
	if s == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '.' {
			return true
		}
		if s[i] == '.' {
			if dots > 0 {
				return true
			}
			dots++
		}
	}
	return false
}

// valueBuilder accumulates bytes/strings/values the way lil_append_char/
// lil_append_string/lil_append_val mutate a lil_value in place; Go values
// are immutable once built, so parsing code builds through this instead.
type valueBuilder struct {
	b strings.Builder
}

func (vb *valueBuilder) WriteByte(c byte) {
	vb.b.WriteByte(c)
}

func (vb *valueBuilder) WriteString(s string) {
	vb.b.WriteString(s)
}

func (vb *valueBuilder) WriteValue(v *Value) {
	if v != nil {
		vb.b.WriteString(v.s)
	}
}

func (vb *valueBuilder) Value() *Value {
	return &Value{s: vb.b.String()}
}

func (vb *valueBuilder) Len() int {
	return vb.b.Len()
}
