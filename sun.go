package weatheroverlay

const (
	sunInnerInset = 200 // inner gradient radius is H/2 minus this
	sunSwing      = 50  // offset breathes this far either side of H/2
)

var (
	sunCore = RGBA8(255, 255, 0, 0.8)
	sunEdge = RGBA8(255, 165, 0, 0.1)
)

// Sun fills the surface with a glow hanging from the top edge whose outer
// radius breathes in and out by one pixel per tick.
type Sun struct {
	w, h      float64
	offset    float64
	direction float64
}

// NewSun creates a sun effect for a w×h surface. The glow starts at H/2 and
// grows first.
func NewSun(w, h float64) *Sun {
	return &Sun{w: w, h: h, offset: h / 2, direction: 1}
}

// Draw fills the whole surface with the glow gradient, then steps the radius.
func (s *Sun) Draw(dst Surface) {
	dst.SetFillStyle(s.Gradient())
	dst.SetGlobalAlpha(1)
	dst.FillRect(0, 0, s.w, s.h)
	s.update()
}

// Gradient returns the glow for the current offset.
func (s *Sun) Gradient() *RadialGradient {
	g := NewRadialGradient(s.w/2, 0, s.h/2-sunInnerInset, s.w/2, 0, s.offset)
	g.AddColorStop(0, sunCore)
	g.AddColorStop(1, sunEdge)
	return g
}

// Offset returns the current outer radius of the glow.
func (s *Sun) Offset() float64 {
	return s.offset
}

// Direction returns +1 while the glow grows and -1 while it shrinks.
func (s *Sun) Direction() float64 {
	return s.direction
}

func (s *Sun) update() {
	s.offset += s.direction
	if s.offset < s.h/2-sunSwing || s.offset > s.h/2+sunSwing {
		// Bounce immediately so the offset never lingers past the boundary.
		s.direction = -s.direction
		s.offset += s.direction
	}
}
