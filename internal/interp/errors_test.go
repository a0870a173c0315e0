package interp

import "testing"

func kindOf(t *testing.T, code string) Kind {
	t.Helper()
	ip := New()
	ip.Parse(code, false)
	if !ip.HasError() {
		t.Fatalf("code %q: expected an error, got none", code)
	}
	return ip.Err().Kind
}

func TestErrorKindDivisionByZero(t *testing.T) {
	if got := kindOf(t, `expr 1 / 0`); got != KindDivisionByZero {
		t.Errorf("got Kind %v, want KindDivisionByZero", got)
	}
}

func TestErrorKindExpressionSyntax(t *testing.T) {
	if got := kindOf(t, `expr (1 +`); got != KindExpressionSyntax {
		t.Errorf("got Kind %v, want KindExpressionSyntax", got)
	}
}

func TestErrorKindUnknownCommand(t *testing.T) {
	if got := kindOf(t, `this-command-does-not-exist`); got != KindUnknownCommand {
		t.Errorf("got Kind %v, want KindUnknownCommand", got)
	}
}

func TestErrorKindRecursionExceeded(t *testing.T) {
	ip := New()
	ip.Register("recur", func(ip *Interp, args []*Value) *Value {
		return ip.ParseValue(NewValue("recur"), true)
	})
	ip.Parse("recur", false)
	if !ip.HasError() {
		t.Fatalf("expected a recursion error, got none")
	}
	if got := ip.Err().Kind; got != KindRecursionExceeded {
		t.Errorf("got Kind %v, want KindRecursionExceeded", got)
	}
}

func TestErrorKindUnbalancedStillReported(t *testing.T) {
	if got := kindOf(t, `set x {unbalanced`); got != KindUnbalanced {
		t.Errorf("got Kind %v, want KindUnbalanced", got)
	}
}
