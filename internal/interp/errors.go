package interp

// Kind classifies why an Error was raised. The first four map 1:1 onto
// cli_lil.c's `enum { ERROR_NOERROR, ERROR_DEFAULT, ERROR_FIXHEAD,
// ERROR_UNBALANCED }`; the rest widen that into the full taxonomy named by
// the built-in command set (division by zero, expression syntax, unknown
// command, recursion limit, interruption).
type Kind int

const (
	KindNone Kind = iota
	KindDefault
	KindFixHead
	KindUnbalanced
	KindDivisionByZero
	KindExpressionSyntax
	KindUnknownCommand
	KindRecursionExceeded
	KindInterrupted
)

// Error is the value held in the interpreter's single sticky error slot.
// Once set it suppresses further evaluation until consumed via Interp.Err
// or cleared by `try`.
type Error struct {
	Kind    Kind
	Pos     int
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}
