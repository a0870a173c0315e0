package interp

import "testing"

func TestListAppendSize(t *testing.T) {
	l := NewList()
	l.Append(NewValue("a"))
	l.Append(NewValue("b"))
	if l.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", l.Size())
	}
	if got := l.Get(0).String(); got != "a" {
		t.Errorf("Get(0) = %q, want a", got)
	}
	if got := l.Get(1).String(); got != "b" {
		t.Errorf("Get(1) = %q, want b", got)
	}
}

func TestListToValuePlainWords(t *testing.T) {
	l := NewList()
	l.Append(NewValue("foo"))
	l.Append(NewValue("bar"))
	if got := l.ToValue(true).String(); got != "foo bar" {
		t.Errorf("ToValue = %q, want %q", got, "foo bar")
	}
}

func TestListToValueEscapesSpecialElements(t *testing.T) {
	l := NewList()
	l.Append(NewValue("foo bar"))
	got := l.ToValue(true).String()
	if got != "{foo bar}" {
		t.Errorf("ToValue = %q, want {foo bar}", got)
	}
}

func TestListToValueEscapesEmptyElement(t *testing.T) {
	l := NewList()
	l.Append(NewValue(""))
	l.Append(NewValue("x"))
	got := l.ToValue(true).String()
	if got != "{} x" {
		t.Errorf("ToValue = %q, want {} x", got)
	}
}

func TestListToValueNoEscapeWhenDisabled(t *testing.T) {
	l := NewList()
	l.Append(NewValue("foo bar"))
	if got := l.ToValue(false).String(); got != "foo bar" {
		t.Errorf("ToValue(false) = %q, want unescaped foo bar", got)
	}
}
