package weatheroverlay

// Label draws the raw state name in the middle of the surface. It is the
// fallback for states without an animation.
type Label struct {
	w, h float64
	text string
}

// NewLabel creates a label effect showing text on a w×h surface.
func NewLabel(w, h float64, text string) *Label {
	return &Label{w: w, h: h, text: text}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// Draw renders the text centered. Labels never move.
func (l *Label) Draw(dst Surface) {
	dst.SetGlobalAlpha(1)
	dst.SetFillStyle(ColorGray)
	dst.SetFont(DefaultFont)
	dst.SetTextAlign(TextAlignCenter)
	dst.SetTextBaseline(TextBaselineMiddle)
	dst.FillText(l.text, l.w/2, l.h/2)
}
