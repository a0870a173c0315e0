package interp

// This file implements the mandatory command set: the handful of
// commands cli_lil.c's register_stdcmds installs unconditionally,
// regardless of CONFIG_LIL_FULL. Everything else lives in
// builtins_full.go, gated behind the `lilreduced` build tag the same way
// the C macro gates them at compile time.

// arg returns args[i], or nil past the end -- mirroring lil_arg's
// "argv ? argv[index] : NULL" (here, an out-of-range index rather than a
// nil slice).
func arg(args []*Value, i int) *Value {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

func argStr(args []*Value, i int) string {
	return arg(args, i).String()
}

func argInt(args []*Value, i int) int64 {
	return arg(args, i).Int()
}

// joinArgs space-joins args into a single value, the pattern fnc_eval/
// fnc_expr/fnc_quote all use to fold a multi-argument call into one
// piece of code/text before acting on it.
func joinArgs(args []*Value) *Value {
	var b valueBuilder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteValue(a)
	}
	return b.Value()
}

func registerCoreCmds(ip *Interp) {
	ip.Register("dec", fncDec)
	ip.Register("eval", fncEval)
	ip.Register("expr", fncExpr)
	ip.Register("for", fncFor)
	ip.Register("foreach", fncForeach)
	ip.Register("func", fncFunc)
	ip.Register("if", fncIf)
	ip.Register("inc", fncInc)
	ip.Register("local", fncLocal)
	ip.Register("return", fncReturn)
	ip.Register("set", fncSet)
	ip.Register("strcmp", fncStrcmp)
	ip.Register("try", fncTry)
	ip.Register("while", fncWhile)
}

func fncSet(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}

	i := 0
	mode := SetLocal
	if argStr(args, 0) == "global" {
		i = 1
		mode = SetGlobal
	}

	var v *Variable
	for i < len(args) {
		if len(args) == i+1 {
			return ip.getVar(argStr(args, i)).Clone()
		}
		v = ip.setVar(argStr(args, i), arg(args, i+1), mode)
		i += 2
	}

	if v != nil {
		return v.value.Clone()
	}
	return nil
}

func fncLocal(ip *Interp, args []*Value) *Value {
	for _, a := range args {
		name := a.String()
		if ip.env.findLocal(name) == nil {
			ip.setVar(name, ip.empty, SetLocalNew)
		}
	}
	return nil
}

func fncEval(ip *Interp, args []*Value) *Value {
	switch {
	case len(args) == 1:
		return ip.ParseValue(args[0], false)
	case len(args) > 1:
		return ip.ParseValue(joinArgs(args), false)
	}
	return nil
}

func fncExpr(ip *Interp, args []*Value) *Value {
	switch {
	case len(args) == 1:
		return ip.EvalExpr(args[0])
	case len(args) > 1:
		return ip.EvalExpr(joinArgs(args))
	}
	return nil
}

func fncIf(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	base := 0
	not := false
	if argStr(args, 0) == "not" {
		base, not = 1, true
	}
	if len(args) < base+2 {
		return nil
	}

	val := ip.EvalExpr(args[base])
	if val == nil || ip.HasError() {
		return nil
	}
	v := val.Bool()
	if not {
		v = !v
	}

	if v {
		return ip.ParseValue(args[base+1], false)
	}
	if len(args) > base+2 {
		return ip.ParseValue(args[base+2], false)
	}
	return nil
}

func fncWhile(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	base := 0
	not := false
	if argStr(args, 0) == "not" {
		base, not = 1, true
	}
	if len(args) < base+2 {
		return nil
	}

	var r *Value
	for !ip.HasError() && !ip.env.breakRun {
		val := ip.EvalExpr(args[base])
		if val == nil || ip.HasError() {
			return nil
		}
		v := val.Bool()
		if not {
			v = !v
		}
		if !v {
			break
		}
		r = ip.ParseValue(args[base+1], false)
	}
	return r
}

func fncFor(ip *Interp, args []*Value) *Value {
	if len(args) < 4 {
		return nil
	}

	ip.ParseValue(args[0], false)
	var r *Value
	for !ip.HasError() && !ip.env.breakRun {
		val := ip.EvalExpr(args[1])
		if val == nil || ip.HasError() {
			return nil
		}
		if !val.Bool() {
			break
		}
		r = ip.ParseValue(args[3], false)
		ip.ParseValue(args[2], false)
	}
	return r
}

func fncForeach(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}

	varname := "i"
	listIdx, codeIdx := 0, 1
	if len(args) >= 3 {
		varname = argStr(args, 0)
		listIdx, codeIdx = 1, 2
	}

	rlist := NewList()
	list := ip.SubstToList(args[listIdx])
	for _, item := range list.Items() {
		ip.setVar(varname, item, SetLocalOnly)
		rv := ip.ParseValue(args[codeIdx], false)
		if rv.Len() > 0 {
			rlist.Append(rv)
		}
		if ip.env.breakRun || ip.HasError() {
			break
		}
	}

	return rlist.ToValue(true)
}

func fncFunc(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	var name *Value
	var fargs *List
	var cmd *Function

	switch {
	case len(args) >= 3:
		name = args[0].Clone()
		fargs = ip.SubstToList(args[1])
		cmd = ip.addFunc(argStr(args, 0))
		cmd.argNames = fargs
		cmd.code = args[2].Clone()
	case len(args) < 2:
		name = ip.UnusedName("anonymous-function")
		fargs = ip.SubstToList(NewValue("args"))
		cmd = ip.addFunc(name.String())
		cmd.argNames = fargs
		cmd.code = args[0].Clone()
	default:
		name = ip.UnusedName("anonymous-function")
		fargs = ip.SubstToList(args[0])
		cmd = ip.addFunc(name.String())
		cmd.argNames = fargs
		cmd.code = args[1].Clone()
	}

	return name
}

func fncReturn(ip *Interp, args []*Value) *Value {
	ip.env.breakRun = true
	ip.env.retval = arg(args, 0).Clone()
	ip.env.retvalSet = true
	return arg(args, 0).Clone()
}

func realInc(ip *Interp, varname string, delta int64) *Value {
	pv := ip.getVar(varname)
	nv := NewInteger(pv.Int() + delta)
	ip.setVar(varname, nv, SetLocal)
	return nv
}

func fncInc(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	delta := int64(1)
	if len(args) > 1 {
		delta = argInt(args, 1)
	}
	return realInc(ip, argStr(args, 0), delta)
}

func fncDec(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	delta := int64(1)
	if len(args) > 1 {
		delta = argInt(args, 1)
	}
	return realInc(ip, argStr(args, 0), -delta)
}

func fncStrcmp(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	a, b := argStr(args, 0), argStr(args, 1)
	switch {
	case a < b:
		return NewInteger(-1)
	case a > b:
		return NewInteger(1)
	default:
		return NewInteger(0)
	}
}

func fncTry(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	if ip.HasError() {
		return nil
	}

	r := ip.ParseValue(args[0], false)
	if ip.HasError() {
		ip.err = nil
		if len(args) > 1 {
			return ip.ParseValue(args[1], false)
		}
		return EmptyValue
	}
	return r
}
