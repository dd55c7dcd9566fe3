package eui

// ColorPair is one role's full color contract: a text color paired with the
// shade ramp it is drawn on.
type ColorPair struct {
	Text Color
	Base ColorSet
}

func (p ColorPair) Equal(o ColorPair) bool {
	return p.Text == o.Text && p.Base.Equal(o.Base)
}

// Clone returns a copy that shares no backing storage with p.
func (p ColorPair) Clone() ColorPair {
	return ColorPair{Text: p.Text, Base: p.Base.clone()}
}
