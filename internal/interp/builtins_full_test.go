package interp

import "testing"

func TestBuiltinCountAndIndex(t *testing.T) {
	if got := evalString(t, `count {a b c}`); got != "3" {
		t.Errorf("count = %q, want 3", got)
	}
	if got := evalString(t, `index {a b c} 1`); got != "b" {
		t.Errorf("index = %q, want b", got)
	}
	if got := evalString(t, `indexof {a b c} b`); got != "1" {
		t.Errorf("indexof = %q, want 1", got)
	}
}

func TestBuiltinLength(t *testing.T) {
	if got := evalString(t, `length hello`); got != "5" {
		t.Errorf("length = %q, want 5", got)
	}
	// Two args join with one separating space byte: "ab" + " " + "cd" = 5.
	if got := evalString(t, `length ab cd`); got != "5" {
		t.Errorf("length = %q, want 5", got)
	}
}

func TestBuiltinAppend(t *testing.T) {
	code := `set x {a b}; append x c; set x`
	if got := evalString(t, code); got != "a b c" {
		t.Errorf("got %q, want %q", got, "a b c")
	}
}

func TestBuiltinSlice(t *testing.T) {
	if got := evalString(t, `slice {a b c d} 1 3`); got != "b c" {
		t.Errorf("slice = %q, want %q", got, "b c")
	}
}

func TestBuiltinFilter(t *testing.T) {
	if got := evalString(t, `filter x {1 2 3 4 5} {$x > 2}`); got != "3 4 5" {
		t.Errorf("filter = %q, want %q", got, "3 4 5")
	}
}

func TestBuiltinConcat(t *testing.T) {
	if got := evalString(t, `concat {a b} {c d}`); got != "a bc d" {
		t.Errorf("concat = %q, want %q", got, "a bc d")
	}
}

func TestBuiltinCharAndCodeat(t *testing.T) {
	if got := evalString(t, `char 65`); got != "A" {
		t.Errorf("char = %q, want A", got)
	}
	if got := evalString(t, `charat hello 1`); got != "e" {
		t.Errorf("charat = %q, want e", got)
	}
	if got := evalString(t, `codeat A 0`); got != "65" {
		t.Errorf("codeat = %q, want 65", got)
	}
}

func TestBuiltinSubstr(t *testing.T) {
	if got := evalString(t, `substr hello 1 3`); got != "el" {
		t.Errorf("substr = %q, want el", got)
	}
}

func TestBuiltinStrpos(t *testing.T) {
	if got := evalString(t, `strpos "hello world" world`); got != "6" {
		t.Errorf("strpos = %q, want 6", got)
	}
	if got := evalString(t, `strpos hello xyz`); got != "-1" {
		t.Errorf("strpos = %q, want -1", got)
	}
}

func TestBuiltinTrimVariants(t *testing.T) {
	if got := evalString(t, `trim "  hi  "`); got != "hi" {
		t.Errorf("trim = %q, want %q", got, "hi")
	}
	if got := evalString(t, `ltrim "  hi  "`); got != "hi  " {
		t.Errorf("ltrim = %q, want %q", got, "hi  ")
	}
	if got := evalString(t, `rtrim "  hi  "`); got != "  hi" {
		t.Errorf("rtrim = %q, want %q", got, "  hi")
	}
}

func TestBuiltinStreq(t *testing.T) {
	if got := evalString(t, `streq abc abc`); got != "1" {
		t.Errorf("streq = %q, want 1", got)
	}
	if got := evalString(t, `streq abc xyz`); got != "0" {
		t.Errorf("streq = %q, want 0", got)
	}
}

func TestBuiltinRepstr(t *testing.T) {
	if got := evalString(t, `repstr "foo bar foo" foo baz`); got != "baz bar baz" {
		t.Errorf("repstr = %q, want %q", got, "baz bar baz")
	}
}

func TestBuiltinSplit(t *testing.T) {
	if got := evalString(t, `split "a,b,c" ,`); got != "a b c" {
		t.Errorf("split = %q, want %q", got, "a b c")
	}
}

func TestBuiltinRename(t *testing.T) {
	code := `func greet {} {set x hi}
rename greet hello
hello`
	if got := evalString(t, code); got != "hi" {
		t.Errorf("got %q, want hi", got)
	}
}

func TestBuiltinWatchFiresOnWrite(t *testing.T) {
	code := `set x 0; set hits 0
watch x {inc hits}
set x 1
set x 2
set hits`
	if got := evalString(t, code); got != "2" {
		t.Errorf("got %q, want 2 (watch fires once per write)", got)
	}
}

func TestBuiltinCatcherHandlesUnknownCommand(t *testing.T) {
	code := `catcher {return caught}
this-command-does-not-exist`
	if got := evalString(t, code); got != "caught" {
		t.Errorf("got %q, want caught", got)
	}
}

func TestBuiltinJaileval(t *testing.T) {
	code := `jaileval {expr 2 + 2}`
	if got := evalString(t, code); got != "4" {
		t.Errorf("got %q, want 4", got)
	}
}

func TestBuiltinReflectVersion(t *testing.T) {
	ip := New()
	v := ip.Parse(`reflect version`, false)
	if ip.HasError() {
		t.Fatalf("reflect version errored: %s", ip.Err().Message)
	}
	if v.String() == "" {
		t.Errorf("reflect version returned empty string")
	}
}

func TestBuiltinReflectHasFunc(t *testing.T) {
	if got := evalString(t, `reflect has-func set`); got != "1" {
		t.Errorf("reflect has-func set = %q, want 1", got)
	}
	if got := evalString(t, `reflect has-func this-does-not-exist`); got != "" {
		t.Errorf("reflect has-func this-does-not-exist = %q, want empty", got)
	}
}

func TestBuiltinUpevalSeesCallerScope(t *testing.T) {
	code := `set x outer
func f {} {upeval {set x inner}}
f
set x`
	if got := evalString(t, code); got != "inner" {
		t.Errorf("got %q, want inner", got)
	}
}
