package interp

import "testing"

func TestEnvironmentDefineAndFindLocal(t *testing.T) {
	root := NewEnvironment(nil)
	root.define("x", NewValue("1"))
	if v := root.findLocal("x"); v == nil || v.value.String() != "1" {
		t.Fatalf("findLocal(x) = %v, want value 1", v)
	}
	if v := root.findLocal("y"); v != nil {
		t.Fatalf("findLocal(y) = %v, want nil", v)
	}
}

func TestEnvironmentFindTwoLevelScoping(t *testing.T) {
	root := NewEnvironment(nil)
	root.define("g", NewValue("root-value"))

	mid := NewEnvironment(root)
	mid.define("m", NewValue("mid-value"))

	leaf := NewEnvironment(mid)

	// leaf resolves its own locals.
	leaf.define("l", NewValue("leaf-value"))
	if v := leaf.find(root, "l"); v == nil || v.value.String() != "leaf-value" {
		t.Fatalf("find(l) from leaf = %v, want leaf-value", v)
	}

	// leaf resolves root-level names directly, skipping the intermediate frame.
	if v := leaf.find(root, "g"); v == nil || v.value.String() != "root-value" {
		t.Fatalf("find(g) from leaf = %v, want root-value", v)
	}

	// leaf must NOT see a variable defined only in the intermediate frame.
	if v := leaf.find(root, "m"); v != nil {
		t.Fatalf("find(m) from leaf = %v, want nil (two-level scoping skips intermediate frames)", v)
	}
}

func TestEnvironmentFindAtRoot(t *testing.T) {
	root := NewEnvironment(nil)
	root.define("g", NewValue("root-value"))
	if v := root.find(root, "g"); v == nil || v.value.String() != "root-value" {
		t.Fatalf("find(g) at root = %v, want root-value", v)
	}
	if v := root.find(root, "missing"); v != nil {
		t.Fatalf("find(missing) at root = %v, want nil", v)
	}
}
