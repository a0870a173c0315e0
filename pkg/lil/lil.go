// Package lil is the high-level embedding API for the lil interpreter: a
// thin, host-friendly wrapper around internal/interp's lower-level Interp.
package lil

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lil-lang/lil/internal/config"
	"github.com/lil-lang/lil/internal/interp"
)

// VM is one embeddable lil interpreter instance.
type VM struct {
	ip *interp.Interp
}

// New creates a ready-to-use VM with the standard command set registered.
func New() *VM {
	return &VM{ip: interp.New()}
}

// WithContext arranges for running scripts to observe ctx's cancellation
// as an interrupt, checked once per statement.
func (v *VM) WithContext(ctx context.Context) *VM {
	v.ip.Context = ctx
	return v
}

// WithOutput redirects the interpreter's script-visible output stream
// (consulted by host-registered commands, e.g. a `puts` a caller adds via
// Bind).
func (v *VM) WithOutput(w io.Writer) *VM {
	v.ip.Out = w
	return v
}

// Bind registers a native Go function under name. fn receives the raw
// argument strings and returns the result string; errors set the
// interpreter's sticky error slot (the calling script sees them the same
// way a failed built-in command fails).
func (v *VM) Bind(name string, fn func(args []string) (string, error)) {
	v.ip.Register(name, func(ip *interp.Interp, args []*interp.Value) *interp.Value {
		strArgs := make([]string, len(args))
		for i, a := range args {
			strArgs[i] = a.String()
		}
		result, err := fn(strArgs)
		if err != nil {
			ip.SetError(err.Error())
			return nil
		}
		return interp.NewValue(result)
	})
}

// Set assigns a global variable visible to scripts.
func (v *VM) Set(name, value string) {
	v.ip.Call("set", []*interp.Value{interp.NewValue("global"), interp.NewValue(name), interp.NewValue(value)})
}

// Get reads a variable's current value.
func (v *VM) Get(name string) string {
	r := v.ip.Call("set", []*interp.Value{interp.NewValue(name)})
	return r.String()
}

// Call invokes a registered command (native or script-defined) directly,
// bypassing the parser.
func (v *VM) Call(name string, args ...string) (string, error) {
	vals := make([]*interp.Value, len(args))
	for i, a := range args {
		vals[i] = interp.NewValue(a)
	}
	r := v.ip.Call(name, vals)
	if e := v.ip.Err(); e != nil {
		return "", fmt.Errorf("%s", e.Message)
	}
	return r.String(), nil
}

// Eval runs code as a lil script and returns the value of its last
// statement.
func (v *VM) Eval(code string) (string, error) {
	r := v.ip.Parse(code, false)
	if e := v.ip.Err(); e != nil {
		return "", fmt.Errorf("%s", e.Message)
	}
	return r.String(), nil
}

// LoadFile reads and evaluates a script file from disk. path must carry a
// recognized source extension (config.SourceFileExtensions).
func (v *VM) LoadFile(path string) (string, error) {
	if !config.HasSourceExt(path) {
		return "", fmt.Errorf("%s: not a %s script", path, config.SourceFileExt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return v.Eval(string(data))
}

// Err reports the interpreter's pending sticky error, if any, without
// consuming it.
func (v *VM) Err() error {
	if !v.ip.HasError() {
		return nil
	}
	e := v.ip.Err()
	v.ip.SetErrorAtKind(e.Pos, e.Kind, e.Message) // put it back; callers may inspect then clear
	return e
}

// Interp exposes the underlying low-level interpreter for callers that
// need finer control (host callback wiring, custom SetVarMode writes)
// than the VM facade offers.
func (v *VM) Interp() *interp.Interp {
	return v.ip
}
