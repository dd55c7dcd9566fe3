package eui

import (
	"encoding/json"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#000000", Black},
		{"#14b8a6", NewColor(0x14, 0xb8, 0xa6, 255)},
		{"#14B8A680", NewColor(0x14, 0xb8, 0xa6, 0x80)},
		{" #abc ", NewColor(0xaa, 0xbb, 0xcc, 255)},
		{"0,0,1", White},
		{"240,1,1", NewColor(0, 0, 255, 255)},
		{"0,1,1,0.5", NewColor(255, 0, 0, 128)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "fff", "#ff", "#gggggg", "1,2", "a,b,c", "0,1,1,x"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestHex(t *testing.T) {
	if got := NewColor(1, 2, 3, 255).Hex(); got != "#010203" {
		t.Fatalf("Hex = %s", got)
	}
	if got := NewColor(1, 2, 3, 4).Hex(); got != "#01020304" {
		t.Fatalf("Hex = %s", got)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(NewColor(0x12, 0x34, 0x56, 255))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"#123456"` {
		t.Fatalf("marshal = %s", data)
	}

	cases := []struct {
		in   string
		want Color
	}{
		{`"#123456"`, NewColor(0x12, 0x34, 0x56, 255)},
		{`{"HSV":[120,1,1,1]}`, NewColor(0, 255, 0, 255)},
		{`{"R":1,"G":2,"B":3,"A":4}`, NewColor(1, 2, 3, 4)},
	}
	for _, c := range cases {
		var got Color
		if err := json.Unmarshal([]byte(c.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("unmarshal %s = %v, want %v", c.in, got, c.want)
		}
	}
	var c Color
	if err := json.Unmarshal([]byte(`"nope"`), &c); err == nil {
		t.Fatalf("expected error")
	}
	if err := json.Unmarshal([]byte(`17`), &c); err == nil {
		t.Fatalf("expected error for number")
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black, NewColor(0x14, 0xb8, 0xa6, 255), NewColor(200, 10, 90, 255)} {
		h, s, v, a := rgbaToHSVA(c.ToRGBA())
		if got := Color(hsvaToRGBA(h, s, v, a)); got != c {
			t.Fatalf("round trip %v -> %v", c, got)
		}
	}
}
