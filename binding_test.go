package rgss

import "testing"

func TestBindingResolvesToOneInstance(t *testing.T) {
	var b binding[Rect]
	if b.current() != &b.owned {
		t.Fatal("default binding does not resolve to embedded value")
	}
	if b.isExternal() {
		t.Error("isExternal() = true by default")
	}

	ext := NewRect(1, 2, 3, 4)
	b.bind(ext)
	if b.current() != ext {
		t.Error("current() != bound instance")
	}
	if !b.isExternal() {
		t.Error("isExternal() = false after bind")
	}

	b.bind(nil)
	if b.current() != &b.owned {
		t.Error("bind(nil) did not restore embedded value")
	}
}
