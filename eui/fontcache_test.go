package eui

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontStore(t *testing.T) {
	s := NewFontStore()
	if f := s.Face(FontHandle{Name: FontBaseName}, 12); f.Source != nil {
		t.Fatalf("empty store returned a source")
	}

	base, err := s.RegisterTTF(FontBaseName, goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	heading, err := s.RegisterTTF(FontHeadingName, gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has(base) || !s.Has(heading) || s.Has(FontHandle{Name: "mono"}) {
		t.Fatalf("Has is wrong")
	}
	if strings.Join(s.Names(), ",") != "base,heading" {
		t.Fatalf("names = %v", s.Names())
	}

	f := s.Face(base, 12)
	if f.Source == nil || f.Size != 12 {
		t.Fatalf("face = %+v", f)
	}
	if s.Face(base, 12) != f {
		t.Fatalf("face not cached")
	}
	if s.Face(base, 14) == f {
		t.Fatalf("sizes share a face")
	}
	if s.Face(heading, 12).Source == f.Source {
		t.Fatalf("heading uses the base source")
	}
	if got := s.Face(FontHandle{Name: "mono"}, 12); got.Source != f.Source {
		t.Fatalf("unknown handle did not fall back to the first font")
	}

	s.Register(FontBaseName, s.Face(heading, 12).Source)
	if s.Face(base, 12) == f {
		t.Fatalf("re-registering did not drop cached faces")
	}

	if _, err := s.RegisterTTF("bad", []byte("not a font")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFontHandleText(t *testing.T) {
	var h FontHandle
	if !h.IsZero() {
		t.Fatalf("zero handle not zero")
	}
	if err := h.UnmarshalText([]byte("heading")); err != nil {
		t.Fatal(err)
	}
	b, _ := h.MarshalText()
	if string(b) != "heading" || h.IsZero() {
		t.Fatalf("handle = %+v", h)
	}
}
