package assets

import "testing"

func TestFaceIsCached(t *testing.T) {
	if err := LoadFonts(); err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	a := Face(Bold, 24)
	b := Face(Bold, 24)
	if a != b {
		t.Fatalf("expected the same face for the same weight and size")
	}
	if c := Face(Regular, 24); c == a {
		t.Fatalf("expected a different face for a different weight")
	}
	if a.Size != 24 {
		t.Fatalf("expected size 24, got %v", a.Size)
	}
}
