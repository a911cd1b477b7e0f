package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %#v, want default", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 || got[0] != "x" {
		t.Fatalf("IfEmpty(in) = %#v, want input", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "field"); got != "ok" {
		t.Fatalf("MustString = %q", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for blank input")
		}
	}()
	_ = MustString("   ", "field")
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"search", "/search"},
		{"/search", "/search"},
		{"  /search/ ", "/search"},
		{"search/stats", "/search/stats"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for root path")
		}
	}()
	_ = MustPrefix(" / ")
}

func TestPtrAndDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("v")
	if p == nil || *p != "v" {
		t.Fatalf("Ptr(v) mismatch")
	}
	if Deref(nil) != "" {
		t.Fatalf("Deref(nil) should be empty")
	}
	if Deref(p) != "v" {
		t.Fatalf("Deref(p) = %q", Deref(p))
	}
}

func TestEmptyToNil(t *testing.T) {
	if EmptyToNil("  ") != "" {
		t.Fatalf("whitespace should collapse to empty")
	}
	if EmptyToNil(" x ") != " x " {
		t.Fatalf("content should pass through unchanged")
	}
}
