//go:build lilreduced

package interp

// registerFullCmds is a no-op in a `lilreduced` build: none of the
// CONFIG_LIL_FULL-gated commands (append, reflect, jaileval, trim, ...)
// are compiled in.
func registerFullCmds(ip *Interp) {}
