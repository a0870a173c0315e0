package interp

import "testing"

func TestValueInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"+7", 7},
		{"0x1F", 31},
		{"0X1f", 31},
		{"010", 8},
		{"  12", 12},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := NewValue(c.in).Int(); got != c.want {
			t.Errorf("NewValue(%q).Int() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestValueBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"00", false},
		{"0.0", false},
		{"0.0.0", true},
		{"1", true},
		{"hello", true},
		{".", false},
	}
	for _, c := range cases {
		if got := NewValue(c.in).Bool(); got != c.want {
			t.Errorf("NewValue(%q).Bool() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewInteger(t *testing.T) {
	if got := NewInteger(-5).String(); got != "-5" {
		t.Errorf("NewInteger(-5).String() = %q, want -5", got)
	}
}

func TestValueClone(t *testing.T) {
	v := NewValue("hi")
	c := v.Clone()
	if c.String() != v.String() {
		t.Errorf("Clone produced %q, want %q", c.String(), v.String())
	}
}
