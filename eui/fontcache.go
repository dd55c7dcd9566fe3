package eui

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontHandle names a face source in a FontStore. A theme only holds the
// handle; the store owns the font data.
type FontHandle struct {
	Name string
}

func (h FontHandle) IsZero() bool { return h.Name == "" }

func (h FontHandle) MarshalText() ([]byte, error) { return []byte(h.Name), nil }

func (h *FontHandle) UnmarshalText(b []byte) error {
	h.Name = string(b)
	return nil
}

type faceKey struct {
	name string
	size float64
}

// FontStore maps handle names to face sources and caches sized faces.
// It is safe for concurrent use.
type FontStore struct {
	mu       sync.RWMutex
	sources  map[string]*text.GoTextFaceSource
	faces    map[faceKey]*text.GoTextFace
	fallback string
}

func NewFontStore() *FontStore {
	return &FontStore{
		sources: map[string]*text.GoTextFaceSource{},
		faces:   map[faceKey]*text.GoTextFace{},
	}
}

// Fonts is the store the previewer and paint helpers draw from.
var Fonts = NewFontStore()

// Register adds src under name. The first source registered becomes the
// fallback for unknown handles.
func (s *FontStore) Register(name string, src *text.GoTextFaceSource) FontHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[name] = src
	if s.fallback == "" {
		s.fallback = name
	}
	for k := range s.faces {
		if k.name == name {
			delete(s.faces, k)
		}
	}
	return FontHandle{Name: name}
}

// RegisterTTF parses TrueType or OpenType data and registers it under name.
func (s *FontStore) RegisterTTF(name string, data []byte) (FontHandle, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return FontHandle{}, fmt.Errorf("parse font %s: %w", name, err)
	}
	return s.Register(name, src), nil
}

func (s *FontStore) Has(h FontHandle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sources[h.Name]
	return ok
}

func (s *FontStore) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.sources))
	for n := range s.sources {
		names = append(names, n)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Face returns a face for h at size. Unknown handles use the fallback
// source; with no sources at all the face has a nil source.
func (s *FontStore) Face(h FontHandle, size float32) *text.GoTextFace {
	sz := float64(size)
	s.mu.RLock()
	name := h.Name
	src, ok := s.sources[name]
	if !ok {
		name = s.fallback
		src = s.sources[name]
	}
	key := faceKey{name: name, size: sz}
	f, cached := s.faces[key]
	s.mu.RUnlock()
	if cached {
		return f
	}
	if src == nil {
		return &text.GoTextFace{Size: sz}
	}
	f = &text.GoTextFace{Source: src, Size: sz}
	s.mu.Lock()
	s.faces[key] = f
	s.mu.Unlock()
	return f
}
