//go:build lilreduced

package interp

// This file is compiled when the `lilreduced` build tag is set, mirroring
// a CONFIG_LIL_FULL-less build: the arithmetic/bitwise/shift tiers of the
// expression grammar just delegate to the next tier down without parsing
// their own operators, so `* / % \ + - << >> & |` are not recognized.

func (ee *exprEval) muldiv() {
	ee.unary()
}

func (ee *exprEval) addsub() {
	ee.muldiv()
}

func (ee *exprEval) shift() {
	ee.addsub()
}

func (ee *exprEval) bitand() {
	ee.equals()
}

func (ee *exprEval) bitor() {
	ee.bitand()
}
