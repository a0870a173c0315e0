package config

// Version is the current lil version.
var Version = "0.1.0"

const SourceFileExt = ".lil"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lil"}

// TrimSourceExt removes a recognized source extension from a filename.
func TrimSourceExt(name string) string {
	if len(name) >= len(SourceFileExt) && name[len(name)-len(SourceFileExt):] == SourceFileExt {
		return name[:len(name)-len(SourceFileExt)]
	}
	return name
}

// HasSourceExt returns true if path ends with any recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Interpreter limits, taken from the original LIL implementation's literal
// constants (common/cli_lil.c).
const (
	// HashBuckets is the fixed bucket count backing every hashmap instance
	// (both the command table and each environment's variable store).
	HashBuckets = 256

	// DefaultMaxNesting caps how deep lil_parse may recurse through nested
	// command/function calls before giving up with a recursion error.
	DefaultMaxNesting = 10000

	// MaxCatcherDepth caps how many times the catcher fallback may invoke
	// itself recursively for an unresolved command name.
	MaxCatcherDepth = 16384

	// DefaultDollarPrefix is the command prefix `$name` expands to before a
	// script overrides it via `reflect dollar-prefix`.
	DefaultDollarPrefix = "set "
)
