//go:build !lilreduced

package interp

import (
	"strings"

	"github.com/lil-lang/lil/internal/config"
)

// This file implements the remainder of the standard command set,
// compiled in whenever the `lilreduced` build tag is absent -- mirroring
// register_stdcmds's `if (IS_ENABLED(CONFIG_LIL_FULL))` block.

func registerFullCmds(ip *Interp) {
	ip.Register("append", fncAppend)
	ip.Register("catcher", fncCatcher)
	ip.Register("char", fncChar)
	ip.Register("charat", fncCharat)
	ip.Register("codeat", fncCodeat)
	ip.Register("concat", fncConcat)
	ip.Register("count", fncCount)
	ip.Register("downeval", fncDowneval)
	ip.Register("enveval", fncEnveval)
	ip.Register("error", fncError)
	ip.Register("filter", fncFilter)
	ip.Register("index", fncIndex)
	ip.Register("indexof", fncIndexof)
	ip.Register("jaileval", fncJaileval)
	ip.Register("length", fncLength)
	ip.Register("list", fncList)
	ip.Register("lmap", fncLmap)
	ip.Register("ltrim", fncLtrim)
	ip.Register("quote", fncQuote)
	ip.Register("reflect", fncReflect)
	ip.Register("rename", fncRename)
	ip.Register("repstr", fncRepstr)
	ip.Register("result", fncResult)
	ip.Register("rtrim", fncRtrim)
	ip.Register("slice", fncSlice)
	ip.Register("split", fncSplit)
	ip.Register("streq", fncStreq)
	ip.Register("strpos", fncStrpos)
	ip.Register("subst", fncSubst)
	ip.Register("substr", fncSubstr)
	ip.Register("topeval", fncTopeval)
	ip.Register("trim", fncTrim)
	ip.Register("unusedname", fncUnusedname)
	ip.Register("upeval", fncUpeval)
	ip.Register("watch", fncWatch)
}

func fncQuote(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	return joinArgs(args)
}

func fncCount(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return NewInteger(0)
	}
	return NewInteger(int64(ip.SubstToList(args[0]).Size()))
}

func fncIndex(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := ip.SubstToList(args[0])
	idx := argInt(args, 1)
	if idx < 0 || idx >= int64(list.Size()) {
		return nil
	}
	return list.Get(int(idx)).Clone()
}

func fncIndexof(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := ip.SubstToList(args[0])
	target := argStr(args, 1)
	for i, v := range list.Items() {
		if v.String() == target {
			return NewInteger(int64(i))
		}
	}
	return nil
}

func fncAppend(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}

	base := 1
	mode := SetLocal
	varname := argStr(args, 0)
	if varname == "global" {
		if len(args) < 3 {
			return nil
		}
		varname = argStr(args, 1)
		base = 2
		mode = SetGlobal
	}

	list := ip.SubstToList(ip.getVar(varname))
	for _, v := range args[base:] {
		list.Append(v.Clone())
	}

	r := list.ToValue(true)
	ip.setVar(varname, r, mode)
	return r
}

func fncSlice(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	if len(args) < 2 {
		return args[0].Clone()
	}

	from := argInt(args, 1)
	if from < 0 {
		from = 0
	}

	list := ip.SubstToList(args[0])
	to := int64(list.Size())
	if len(args) > 2 {
		to = argInt(args, 2)
	}
	if to > int64(list.Size()) {
		to = int64(list.Size())
	} else if to < from {
		to = from
	}

	slice := NewList()
	for i := from; i < to; i++ {
		slice.Append(list.Get(int(i)).Clone())
	}
	return slice.ToValue(true)
}

func fncFilter(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	if len(args) < 2 {
		return args[0].Clone()
	}

	varname := "x"
	base := 0
	if len(args) > 2 {
		base = 1
		varname = argStr(args, 0)
	}

	list := ip.SubstToList(args[base])
	filtered := NewList()
	for _, item := range list.Items() {
		if ip.env.breakRun {
			break
		}
		ip.setVar(varname, item, SetLocalOnly)
		r := ip.EvalExpr(args[base+1])
		if r.Bool() {
			filtered.Append(item.Clone())
		}
	}
	return filtered.ToValue(true)
}

func fncList(ip *Interp, args []*Value) *Value {
	list := NewList()
	for _, a := range args {
		list.Append(a.Clone())
	}
	return list.ToValue(true)
}

func fncSubst(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	return ip.SubstToValue(args[0])
}

func fncConcat(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	var b valueBuilder
	for _, a := range args {
		b.WriteValue(ip.SubstToList(a).ToValue(true))
	}
	return b.Value()
}

func fncLmap(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := ip.SubstToList(args[0])
	for i := 1; i < len(args); i++ {
		ip.setVar(argStr(args, i), list.Get(i-1), SetLocal)
	}
	return nil
}

func fncResult(ip *Interp, args []*Value) *Value {
	if len(args) > 0 {
		ip.env.retval = args[0].Clone()
		ip.env.retvalSet = true
	}
	if ip.env.retvalSet {
		return ip.env.retval.Clone()
	}
	return nil
}

func fncChar(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return NewValue(string([]byte{byte(argInt(args, 0))}))
}

func fncCharat(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := argStr(args, 0)
	idx := argInt(args, 1)
	if idx < 0 || idx >= int64(len(s)) {
		return nil
	}
	return NewValue(string(s[idx]))
}

func fncCodeat(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := argStr(args, 0)
	idx := argInt(args, 1)
	if idx < 0 || idx >= int64(len(s)) {
		return nil
	}
	return NewInteger(int64(s[idx]))
}

func fncSubstr(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := argStr(args, 0)
	if s == "" {
		return nil
	}

	start := argInt(args, 1)
	end := int64(len(s))
	if len(args) > 2 {
		end = argInt(args, 2)
	}
	if end > int64(len(s)) {
		end = int64(len(s))
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}
	return NewValue(s[start:end])
}

func fncStrpos(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return NewInteger(-1)
	}
	hay := argStr(args, 0)
	min := int64(0)
	if len(args) > 2 {
		min = argInt(args, 2)
		if min < 0 || min >= int64(len(hay)) {
			return NewInteger(-1)
		}
	}
	idx := strings.Index(hay[min:], argStr(args, 1))
	if idx < 0 {
		return NewInteger(-1)
	}
	return NewInteger(min + int64(idx))
}

func fncLength(ip *Interp, args []*Value) *Value {
	var total int
	for i, a := range args {
		if i > 0 {
			total++
		}
		total += a.Len()
	}
	return NewInteger(int64(total))
}

const trimChars = " \f\n\r\t\v"

func realTrim(s, chars string, left, right bool) *Value {
	base := 0
	var r *Value

	if left {
		for base < len(s) && strings.IndexByte(chars, s[base]) >= 0 {
			base++
		}
		if !right {
			r = NewValue(s[base:])
		}
	}

	if right {
		s = s[base:]
		end := len(s)
		for end > 0 && strings.IndexByte(chars, s[end-1]) >= 0 {
			end--
		}
		r = NewValue(s[:end])
	}

	return r
}

func trimArgChars(args []*Value) string {
	if len(args) < 2 {
		return trimChars
	}
	return argStr(args, 1)
}

func fncTrim(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return realTrim(argStr(args, 0), trimArgChars(args), true, true)
}

func fncLtrim(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return realTrim(argStr(args, 0), trimArgChars(args), true, false)
}

func fncRtrim(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return realTrim(argStr(args, 0), trimArgChars(args), false, true)
}

func fncStreq(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	return NewBool(argStr(args, 0) == argStr(args, 1))
}

func fncRepstr(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}
	if len(args) < 3 {
		return args[0].Clone()
	}
	from, to := argStr(args, 1), argStr(args, 2)
	if from == "" {
		return nil
	}
	return NewValue(strings.ReplaceAll(argStr(args, 0), from, to))
}

func fncSplit(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	sep := " "
	if len(args) > 1 {
		sep = argStr(args, 1)
		if sep == "" {
			return args[0].Clone()
		}
	}

	str := argStr(args, 0)
	list := NewList()
	var cur valueBuilder
	for i := 0; i < len(str); i++ {
		if strings.IndexByte(sep, str[i]) >= 0 {
			list.Append(cur.Value())
			cur = valueBuilder{}
		} else {
			cur.WriteByte(str[i])
		}
	}
	list.Append(cur.Value())
	return list.ToValue(true)
}

func fncError(ip *Interp, args []*Value) *Value {
	if len(args) > 0 {
		ip.SetError(argStr(args, 0))
	} else {
		ip.SetError("")
	}
	return nil
}

func fncCatcher(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return NewValue(ip.catcher)
	}
	ip.catcher = argStr(args, 0)
	return nil
}

func fncWatch(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}

	wcode := argStr(args, len(args)-1)
	for i := 0; i+1 < len(args); i++ {
		name := argStr(args, i)
		if name == "" {
			continue
		}

		v := ip.env.find(ip.rootEnv, name)
		if v == nil {
			v = ip.setVar(name, nil, SetLocalNew)
		}
		v.watch = wcode
	}
	return nil
}

func fncUnusedname(ip *Interp, args []*Value) *Value {
	part := "unusedname"
	if len(args) > 0 {
		part = argStr(args, 0)
	}
	return ip.UnusedName(part)
}

func fncRename(ip *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	oldname, newname := argStr(args, 0), argStr(args, 1)
	fn := ip.findCmd(oldname)
	if fn == nil {
		ip.SetErrorfAtKind(ip.head, KindUnknownCommand, "unknown function '%s'", oldname)
		return nil
	}

	r := NewValue(fn.name)
	if newname != "" {
		ip.cmdMap.Put(oldname, nil)
		fn.name = newname
		ip.cmdMap.Put(newname, fn)
	} else {
		ip.delFunc(fn)
	}
	return r
}

func fncTopeval(ip *Interp, args []*Value) *Value {
	thisEnv, thisDownEnv := ip.env, ip.downEnv
	ip.env = ip.rootEnv
	ip.downEnv = thisEnv

	r := fncEval(ip, args)

	ip.downEnv = thisDownEnv
	ip.env = thisEnv
	return r
}

func fncUpeval(ip *Interp, args []*Value) *Value {
	thisEnv, thisDownEnv := ip.env, ip.downEnv
	if ip.rootEnv == thisEnv {
		return fncEval(ip, args)
	}

	ip.env = thisEnv.parent
	ip.downEnv = thisEnv

	r := fncEval(ip, args)

	ip.env = thisEnv
	ip.downEnv = thisDownEnv
	return r
}

func fncDowneval(ip *Interp, args []*Value) *Value {
	upEnv, downEnv := ip.env, ip.downEnv
	if downEnv == nil {
		return fncEval(ip, args)
	}

	ip.downEnv = nil
	ip.env = downEnv

	r := fncEval(ip, args)

	ip.downEnv = downEnv
	ip.env = upEnv
	return r
}

func fncEnveval(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	var invars, outvars *List
	codeIndex := 0
	var inValues []*Value

	if len(args) >= 2 {
		invars = ip.SubstToList(args[0])
		inValues = make([]*Value, invars.Size())
		for i, nv := range invars.Items() {
			inValues[i] = ip.getVar(nv.String()).Clone()
		}
		if len(args) > 2 {
			codeIndex = 2
			outvars = ip.SubstToList(args[1])
		} else {
			codeIndex = 1
		}
	}

	ip.pushEnv()
	if invars != nil {
		for i, nv := range invars.Items() {
			ip.setVar(nv.String(), inValues[i], SetLocalNew)
		}
	}

	r := ip.ParseValue(args[codeIndex], false)

	var outValues []*Value
	switch {
	case outvars != nil:
		outValues = make([]*Value, outvars.Size())
		for i, nv := range outvars.Items() {
			outValues[i] = ip.getVar(nv.String()).Clone()
		}
	case invars != nil:
		outValues = make([]*Value, invars.Size())
		for i, nv := range invars.Items() {
			outValues[i] = ip.getVar(nv.String()).Clone()
		}
	}

	ip.popEnv()
	if invars != nil {
		target := invars
		if outvars != nil {
			target = outvars
		}
		for i, nv := range target.Items() {
			ip.setVar(nv.String(), outValues[i], SetLocal)
		}
	}

	return r
}

func fncJaileval(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}

	base := 0
	if argStr(args, 0) == "clean" {
		base = 1
		if len(args) == 1 {
			return nil
		}
	}

	sub := New()
	if base != 1 {
		for _, fn := range ip.cmds[ip.sysCmds:] {
			if fn.proc == nil {
				continue
			}
			sub.Register(fn.name, fn.proc)
		}
	}

	return sub.ParseValue(args[base], true)
}

func fncReflect(ip *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}

	switch argStr(args, 0) {
	case "version":
		return NewValue(config.Version)

	case "args":
		if len(args) < 2 {
			return nil
		}
		fn := ip.findCmd(argStr(args, 1))
		if fn == nil || fn.argNames == nil {
			return nil
		}
		return fn.argNames.ToValue(true)

	case "body":
		if len(args) < 2 {
			return nil
		}
		fn := ip.findCmd(argStr(args, 1))
		if fn == nil || fn.proc != nil {
			return nil
		}
		return fn.code.Clone()

	case "func-count":
		return NewInteger(int64(len(ip.cmds)))

	case "funcs":
		list := NewList()
		for _, fn := range ip.cmds {
			list.Append(NewValue(fn.name))
		}
		return list.ToValue(true)

	case "vars":
		list := NewList()
		for env := ip.env; env != nil; env = env.parent {
			for _, v := range env.vars {
				list.Append(NewValue(v.name))
			}
		}
		return list.ToValue(true)

	case "globals":
		list := NewList()
		for _, v := range ip.rootEnv.vars {
			list.Append(NewValue(v.name))
		}
		return list.ToValue(true)

	case "has-func":
		if len(args) == 1 {
			return nil
		}
		if ip.cmdMap.Has(argStr(args, 1)) {
			return NewValue("1")
		}
		return nil

	case "has-var":
		if len(args) == 1 {
			return nil
		}
		target := argStr(args, 1)
		for env := ip.env; env != nil; env = env.parent {
			if env.varMap.Has(target) {
				return NewValue("1")
			}
		}
		return nil

	case "has-global":
		if len(args) == 1 {
			return nil
		}
		target := argStr(args, 1)
		for _, v := range ip.rootEnv.vars {
			if v.name == target {
				return NewValue("1")
			}
		}
		return nil

	case "error":
		if ip.err != nil {
			return NewValue(ip.err.Message)
		}
		return nil

	case "dollar-prefix":
		if len(args) == 1 {
			return NewValue(ip.dollarPrefix)
		}
		old := NewValue(ip.dollarPrefix)
		ip.dollarPrefix = argStr(args, 1)
		return old

	case "this":
		env := ip.env
		for env != ip.rootEnv && env.catcherFor == nil && env.function == nil {
			env = env.parent
		}
		switch {
		case env.catcherFor != nil:
			return NewValue(ip.catcher)
		case env == ip.rootEnv:
			return NewValue(ip.rootCode)
		case env.function != nil:
			return env.function.code
		}
		return nil

	case "name":
		env := ip.env
		for env != ip.rootEnv && env.catcherFor == nil && env.function == nil {
			env = env.parent
		}
		switch {
		case env.catcherFor != nil:
			return env.catcherFor
		case env == ip.rootEnv:
			return nil
		case env.function != nil:
			return NewValue(env.function.name)
		}
		return nil
	}

	return nil
}
