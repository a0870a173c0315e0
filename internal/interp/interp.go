package interp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lil-lang/lil/internal/config"
)

// SetVarMode selects where lil_set_var (setVar here) looks for an existing
// variable and where it creates one if none is found. Mirrors
// enum lil_setvar from cli_lil.h.
type SetVarMode int

const (
	SetGlobal SetVarMode = iota
	SetLocal
	SetLocalNew
	SetLocalOnly
)

// Interp is one independent lil interpreter instance. It owns its own
// command table, environment stack and parse cursor, and is safe to run on
// its own goroutine but not to share across goroutines concurrently --
// matching the original's single-threaded-per-instance design (spec's
// concurrency model: confine one *Interp per goroutine, run many in
// parallel via pkg/lil's fan-out helper).
type Interp struct {
	code     string
	rootCode string
	head     int
	clen     int
	ignoreEOL bool

	cmds    []*Function
	cmdMap  Hashmap
	sysCmds int

	catcher   string
	inCatcher int

	dollarPrefix string

	env     *Environment
	rootEnv *Environment
	downEnv *Environment

	empty *Value

	err        *Error
	parseDepth int
	maxNesting int

	// Out is the output stream offered to host-registered commands (see
	// pkg/lil's WithOutput). No built-in command writes to it, and cmd/lil
	// registers no output command.
	Out io.Writer

	// Context governs cooperative cancellation, checked once per
	// statement inside Parse -- the idiomatic Go replacement for the
	// original's ctrlc() interrupt poll.
	Context context.Context

	// Host callback hooks, one Go function field per LIL_CALLBACK_*
	// constant in cli_lil.h. All are optional. Nothing in this package
	// calls these six; of the host hooks, only GetVarAtRoot/SetVarAtRoot
	// below are consulted.
	OnExit     func(val *Value)
	OnWrite    func(msg string)
	OnRead     func(name string) (string, bool)
	OnSource   func(name string) (string, bool)
	OnStoreVar func(name, data string)
	OnError    func(pos int, msg string)

	// GetVarAtRoot/SetVarAtRoot back LIL_CALLBACK_GETVAR/SETVAR: a host
	// (e.g. pkg/store's SQLite-backed key/value store) can shadow root
	// variable reads/writes with its own persistent storage.
	GetVarAtRoot func(name string) (*Value, bool)
	SetVarAtRoot func(name string, val *Value) bool
}

// New creates a ready-to-use interpreter with the standard command set
// registered, mirroring lil_new's construction order.
func New() *Interp {
	ip := &Interp{
		empty:        EmptyValue,
		dollarPrefix: config.DefaultDollarPrefix,
		maxNesting:   config.DefaultMaxNesting,
		Out:          os.Stdout,
		Context:      context.Background(),
	}
	ip.rootEnv = NewEnvironment(nil)
	ip.env = ip.rootEnv
	registerCoreCmds(ip)
	registerFullCmds(ip)
	registerExtCmds(ip)
	ip.sysCmds = len(ip.cmds)
	return ip
}

// SetMaxNesting overrides the default recursion-depth cap (REDESIGN FLAG:
// made a first-class, host-configurable limit instead of a disabled-by-
// default compile-time toggle).
func (ip *Interp) SetMaxNesting(n int) {
	ip.maxNesting = n
}

// findCmd resolves a command name, truncating at the first '.' the way
// lil_find_cmd does -- some host commands carry dots in their names
// (U-Boot's namespacing convention), so "foo.bar" looks up "foo".
func (ip *Interp) findCmd(name string) *Function {
	if dot := indexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	if v, ok := ip.cmdMap.Get(name); ok && v != nil {
		return v.(*Function)
	}
	return nil
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (ip *Interp) addFunc(name string) *Function {
	if f := ip.findCmd(name); f != nil {
		f.argNames = nil
		f.code = nil
		f.proc = nil
		return f
	}
	f := &Function{name: name}
	ip.cmds = append(ip.cmds, f)
	ip.cmdMap.Put(name, f)
	return f
}

func (ip *Interp) delFunc(f *Function) {
	for i, c := range ip.cmds {
		if c == f {
			ip.cmds = append(ip.cmds[:i], ip.cmds[i+1:]...)
			break
		}
	}
	ip.cmdMap.Put(f.name, nil)
}

// Register installs a native Go command under name, mirroring lil_register.
func (ip *Interp) Register(name string, proc BuiltinFunc) {
	f := ip.addFunc(name)
	f.proc = proc
}

// pushEnv pushes a fresh child scope and makes it current (lil_push_env).
func (ip *Interp) pushEnv() *Environment {
	env := NewEnvironment(ip.env)
	ip.env = env
	return env
}

// popEnv pops back to the parent scope (lil_pop_env). Popping the root
// environment is a no-op, matching the original's parent-nil guard.
func (ip *Interp) popEnv() {
	if ip.env.parent != nil {
		ip.env = ip.env.parent
	}
}

// setVar implements lil_set_var: resolve (or create) a variable slot
// according to mode, run its watch script (if any) in its owning
// environment, and honor the host SetVarAtRoot hook for root-level writes.
func (ip *Interp) setVar(name string, val *Value, mode SetVarMode) *Variable {
	if name == "" {
		return nil
	}

	env := ip.env
	if mode == SetGlobal {
		env = ip.rootEnv
	}

	if mode != SetLocalNew {
		v := env.find(ip.rootEnv, name)
		if mode == SetLocalOnly && v != nil && v.env == ip.rootEnv && v.env != env {
			v = nil
		}

		if (v == nil && env == ip.rootEnv) || (v != nil && v.env == ip.rootEnv) {
			if ip.SetVarAtRoot != nil && ip.SetVarAtRoot(name, val) {
				return nil
			}
		}

		if v != nil {
			v.value = val.Clone()
			if v.watch != "" {
				saveEnv := ip.env
				ip.env = v.env
				ip.Parse(v.watch, true)
				ip.env = saveEnv
			}
			return v
		}
	}

	return env.define(name, val)
}

// getVar looks up a variable, falling back to ip.empty (lil_get_var).
func (ip *Interp) getVar(name string) *Value {
	return ip.getVarOr(name, ip.empty)
}

// getVarOr looks up a variable, falling back to defval. A miss (or a hit
// that resolves to the root environment) additionally consults the host
// GetVarAtRoot hook, which may override the stored value -- matching
// lil_get_var_or's env_get() host lookup for root-level names.
func (ip *Interp) getVarOr(name string, defval *Value) *Value {
	v := ip.env.find(ip.rootEnv, name)
	retval := defval
	if v != nil {
		retval = v.value
	}
	if v == nil || v.env == ip.rootEnv {
		if ip.GetVarAtRoot != nil {
			if hv, ok := ip.GetVarAtRoot(name); ok {
				retval = hv
			}
		}
	}
	return retval
}

// SetError sets the sticky error slot if it is not already set, matching
// lil_set_error's no-op-if-already-set guard and ERROR_FIXHEAD kind --
// run_cmd rewrites a fix-head error's position to the command's start once
// the native call returns.
func (ip *Interp) SetError(msg string) {
	if ip.err != nil {
		return
	}
	ip.err = &Error{Kind: KindFixHead, Message: msg}
}

// SetErrorf is SetError with fmt.Sprintf formatting.
func (ip *Interp) SetErrorf(format string, args ...any) {
	ip.SetError(fmt.Sprintf(format, args...))
}

// SetErrorAt sets the sticky error slot at a specific source position
// (lil_set_error_at), used by the parser and by commands that know their
// own location (e.g. catcher/unknown-command diagnostics).
func (ip *Interp) SetErrorAt(pos int, msg string) {
	if ip.err != nil {
		return
	}
	ip.err = &Error{Kind: KindDefault, Pos: pos, Message: msg}
}

// SetErrorfAt is SetErrorAt with fmt.Sprintf formatting.
func (ip *Interp) SetErrorfAt(pos int, format string, args ...any) {
	ip.SetErrorAt(pos, fmt.Sprintf(format, args...))
}

// SetErrorKind is SetError followed by overwriting the Kind of the error it
// just raised, for call sites that know a more specific Kind than
// KindFixHead (e.g. division-by-zero, recursion limits). A no-op if the
// error slot was already set, same as SetError.
func (ip *Interp) SetErrorKind(kind Kind, msg string) {
	if ip.err != nil {
		return
	}
	ip.SetError(msg)
	ip.err.Kind = kind
}

// SetErrorfKind is SetErrorKind with fmt.Sprintf formatting.
func (ip *Interp) SetErrorfKind(kind Kind, format string, args ...any) {
	ip.SetErrorKind(kind, fmt.Sprintf(format, args...))
}

// SetErrorAtKind is SetErrorAt followed by overwriting the Kind of the
// error it just raised.
func (ip *Interp) SetErrorAtKind(pos int, kind Kind, msg string) {
	if ip.err != nil {
		return
	}
	ip.SetErrorAt(pos, msg)
	ip.err.Kind = kind
}

// SetErrorfAtKind is SetErrorAtKind with fmt.Sprintf formatting.
func (ip *Interp) SetErrorfAtKind(pos int, kind Kind, format string, args ...any) {
	ip.SetErrorAtKind(pos, kind, fmt.Sprintf(format, args...))
}

// setErrorUnbalanced records an unbalanced-delimiter parse error.
func (ip *Interp) setErrorUnbalanced(expected byte) {
	if ip.err != nil {
		return
	}
	ip.SetErrorfAt(ip.head, "expected %c", expected)
	ip.err.Kind = KindUnbalanced
}

// HasError reports whether the sticky error slot is occupied.
func (ip *Interp) HasError() bool {
	return ip.err != nil
}

// Err consumes the sticky error slot (lil_error): if one is set, it is
// returned and the slot is cleared; otherwise Err returns nil.
func (ip *Interp) Err() *Error {
	e := ip.err
	ip.err = nil
	return e
}

// UnusedName generates a name guaranteed to collide with neither a
// registered command nor a variable visible from the current environment,
// following lil_unused_name's "!!un!<part>!<seq>!nu!!" scheme.
func (ip *Interp) UnusedName(part string) *Value {
	for i := 0; i < 1<<32; i++ {
		name := fmt.Sprintf("!!un!%s!%09d!nu!!", part, i)
		if ip.findCmd(name) != nil {
			continue
		}
		if ip.env.find(ip.rootEnv, name) != nil {
			continue
		}
		return NewValue(name)
	}
	return nil
}

// Interrupted reports whether the host's context was cancelled, the
// idiomatic replacement for the original's ctrlc() poll.
func (ip *Interp) Interrupted() bool {
	if ip.Context == nil {
		return false
	}
	select {
	case <-ip.Context.Done():
		return true
	default:
		return false
	}
}
