package interp

import "github.com/lil-lang/lil/internal/config"

// This file drives the statement-at-a-time evaluation loop: Parse runs a
// code buffer to completion, runCmd dispatches one already-substituted
// word list, and unknownCmd handles the catcher fallback. Grounded on
// cli_lil.c's lil_parse/run_cmd/unknown_cmd/lil_call.

// Parse runs code as a sequence of ';'/EOL-separated statements and
// returns the value of the last one, matching lil_parse. funclevel marks
// that this call represents a function body (or an equivalent nested
// scope, such as a watch script): it both resets the environment's
// break flag on entry and, on exit, honors a pending `return` by
// substituting the environment's stashed return value for the last
// statement's result.
func (ip *Interp) Parse(code string, funclevel bool) *Value {
	saveCode, saveClen, saveHead := ip.code, ip.clen, ip.head

	if ip.code == "" {
		ip.rootCode = code
	}
	ip.code = code
	ip.clen = len(code)
	ip.head = 0

	ip.skipSpaces()
	ip.parseDepth++
	if ip.parseDepth > ip.maxNesting {
		ip.SetErrorKind(KindRecursionExceeded, "too many recursive calls")
		return ip.parseCleanup(saveCode, saveClen, saveHead, funclevel, nil)
	}

	if ip.parseDepth == 1 {
		ip.err = nil
	}

	if funclevel {
		ip.env.breakRun = false
	}

	var val *Value
	for ip.head < ip.clen && !ip.HasError() {
		val = nil

		if ip.Interrupted() {
			ip.SetErrorAtKind(ip.head, KindInterrupted, "interrupted")
			break
		}

		start := ip.head
		words := ip.substitute()
		if words == nil || ip.HasError() {
			break
		}

		if words.Size() > 0 {
			name := words.Get(0).String()
			cmd := ip.findCmd(name)
			if cmd == nil {
				if words.Get(0).Len() > 0 {
					val = ip.unknownCmd(words)
					if val == nil {
						break
					}
				}
			} else {
				val = ip.runCmd(cmd, words, start)
			}

			if ip.env.breakRun {
				break
			}
		}

		ip.skipSpaces()
		for ip.ateol() {
			ip.head++
		}
		ip.skipSpaces()
	}

	return ip.parseCleanup(saveCode, saveClen, saveHead, funclevel, val)
}

func (ip *Interp) parseCleanup(saveCode string, saveClen, saveHead int, funclevel bool, val *Value) *Value {
	ip.code = saveCode
	ip.clen = saveClen
	ip.head = saveHead

	if funclevel && ip.env.retvalSet {
		val = ip.env.retval
		ip.env.retval = nil
		ip.env.retvalSet = false
		ip.env.breakRun = false
	}

	ip.parseDepth--
	if val == nil {
		val = EmptyValue
	}
	return val
}

// ParseValue is Parse over a Value's contents (lil_parse_value); an empty
// value short-circuits to the empty value without entering the parser.
func (ip *Interp) ParseValue(val *Value, funclevel bool) *Value {
	if val == nil || val.Len() == 0 {
		return EmptyValue
	}
	return ip.Parse(val.String(), funclevel)
}

// unknownCmd handles a statement whose command name has no registered
// function: if a catcher script is installed, it runs in a fresh
// environment (with `args` bound to the full word list and
// catcherFor set to the attempted command name) instead of raising an
// error, up to config.MaxCatcherDepth nested catcher invocations deep.
func (ip *Interp) unknownCmd(words *List) *Value {
	if ip.catcher != "" {
		if ip.inCatcher < config.MaxCatcherDepth {
			ip.inCatcher++
			env := ip.pushEnv()
			env.catcherFor = words.Get(0)

			args := words.ToValue(true)
			ip.setVar("args", args, SetLocalNew)

			r := ip.Parse(ip.catcher, true)

			ip.popEnv()
			ip.inCatcher--
			return r
		}
		ip.SetErrorfAtKind(ip.head, KindUnknownCommand, "catcher limit reached while trying to call unknown function %s", words.Get(0).String())
		return nil
	}
	ip.SetErrorfAtKind(ip.head, KindUnknownCommand, "unknown function %s", words.Get(0).String())
	return nil
}

// runCmd dispatches one already-substituted statement to cmd, either a
// native Go proc or a script-defined function. A native proc's
// fix-head error (one that doesn't know its own source position) is
// rewritten to the statement's start offset (start) once the call
// returns -- the original's run_cmd ERROR_FIXHEAD -> ERROR_DEFAULT rewrite.
func (ip *Interp) runCmd(cmd *Function, words *List, start int) *Value {
	if cmd.proc != nil {
		r := cmd.proc(ip, words.Items()[1:])
		if ip.err != nil && ip.err.Kind == KindFixHead {
			ip.err.Kind = KindDefault
			ip.err.Pos = start
		}
		return r
	}

	env := ip.pushEnv()
	env.function = cmd

	argNames := cmd.argNames.Items()
	if len(argNames) == 1 && argNames[0].String() == "args" {
		args := words.ToValue(true)
		ip.setVar("args", args, SetLocalNew)
	} else {
		rest := words.Items()[1:]
		for i, argName := range argNames {
			val := ip.empty
			if i < len(rest) {
				val = rest[i]
			}
			ip.setVar(argName.String(), val, SetLocalNew)
		}
	}

	r := ip.ParseValue(cmd.code, true)
	ip.popEnv()
	return r
}

// Call invokes a registered command (native or script) directly with an
// already-evaluated argument list, bypassing parsing entirely --
// the embedding entry point mirroring lil_call.
func (ip *Interp) Call(name string, args []*Value) *Value {
	cmd := ip.findCmd(name)
	if cmd == nil {
		return nil
	}

	if cmd.proc != nil {
		return cmd.proc(ip, args)
	}

	env := ip.pushEnv()
	env.function = cmd

	argNames := cmd.argNames.Items()
	if len(argNames) == 1 && argNames[0].String() == "args" {
		list := NewList()
		for _, a := range args {
			list.Append(a.Clone())
		}
		ip.setVar("args", list.ToValue(false), SetLocalNew)
	} else {
		for i, argName := range argNames {
			var val *Value
			if i < len(args) {
				val = args[i]
			}
			ip.setVar(argName.String(), val, SetLocalNew)
		}
	}

	r := ip.ParseValue(cmd.code, true)
	ip.popEnv()
	return r
}
