package interp

// List is a growable sequence of Values, the backing representation behind
// every lil "list" (space-separated word sequence with optional brace
// escaping). Grounded on cli_lil.c's lil_list_* family.
type List struct {
	items []*Value
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Append adds val to the end of the list.
func (l *List) Append(val *Value) {
	l.items = append(l.items, val)
}

// Size returns the number of elements.
func (l *List) Size() int {
	return len(l.items)
}

// Get returns the element at index, or nil if index is out of range
// (lil_list_get returns NULL past the end rather than erroring).
func (l *List) Get(index int) *Value {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// Items exposes the backing slice for read-only iteration.
func (l *List) Items() []*Value {
	return l.items
}

// isASCIIPunct/isASCIISpace mirror the "C" locale's ispunct/isspace: only
// bytes in the ASCII range classify, matching the original's byte-at-a-time
// ctype.h calls on 8-bit-clean (non-Unicode) strings.
func isASCIIPunct(b byte) bool {
	return (b >= '!' && b <= '/') || (b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// needsEscape reports whether s must be brace-wrapped when rendered back
// into list-literal form: empty strings, and strings containing any
// punctuation or whitespace byte, both round-trip ambiguously otherwise.
func needsEscape(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if isASCIIPunct(s[i]) || isASCIISpace(s[i]) {
			return true
		}
	}
	return false
}

// ToValue renders the list back into its single-string word-list form. When
// escape is true, elements needing it are wrapped in braces with the
// embedded-brace round-trip substitutions lil_list_to_value uses
// (`{` -> `}"\o"{`, `}` -> `}"\c"{`) so a brace-balanced re-parse recovers
// the original bytes exactly.
func (l *List) ToValue(escape bool) *Value {
	var b valueBuilder
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		s := item.String()
		if escape && needsEscape(s) {
			b.WriteByte('{')
			for j := 0; j < len(s); j++ {
				switch s[j] {
				case '{':
					b.WriteString(`}"\o"{`)
				case '}':
					b.WriteString(`}"\c"{`)
				default:
					b.WriteByte(s[j])
				}
			}
			b.WriteByte('}')
		} else {
			b.WriteValue(item)
		}
	}
	return b.Value()
}
