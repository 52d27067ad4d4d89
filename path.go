package weatheroverlay

import "math"

// arcTolerance is the maximum distance in pixels between a flattened arc and
// the true circle.
const arcTolerance = 0.25

// Subpath is one flattened run of a Path.
type Subpath struct {
	Points []Vec2
	Closed bool
}

// Path accumulates canvas-style path commands as flattened polylines. Arcs
// are converted to line segments when added. Surfaces embed a Path to
// implement BeginPath, MoveTo, LineTo, Arc, and ClosePath.
type Path struct {
	subpaths []Subpath
}

// BeginPath discards every subpath. Point buffers are kept for reuse.
func (p *Path) BeginPath() {
	p.subpaths = p.subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	if len(p.subpaths) < cap(p.subpaths) {
		p.subpaths = p.subpaths[:len(p.subpaths)+1]
	} else {
		p.subpaths = append(p.subpaths, Subpath{})
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	sp.Points = append(sp.Points[:0], Vec2{x, y})
	sp.Closed = false
}

// LineTo adds a segment to (x, y). Without a current subpath it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	sp := p.current()
	if sp == nil {
		p.MoveTo(x, y)
		return
	}
	sp.Points = append(sp.Points, Vec2{x, y})
}

// Arc adds a circular arc. The current point is joined to the arc's start
// with a straight segment, as on a canvas.
func (p *Path) Arc(x, y, r, start, end float64, counterclockwise bool) {
	if r < 0 || math.IsNaN(r) {
		return
	}
	sweep := arcSweep(start, end, counterclockwise)
	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	p.LineTo(sx, sy)

	sp := p.current()
	n := arcSegments(r, sweep)
	for i := 1; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		sp.Points = append(sp.Points, Vec2{x + r*math.Cos(a), y + r*math.Sin(a)})
	}
}

// ClosePath marks the current subpath closed. The next command starts a new
// subpath at the closed subpath's first point.
func (p *Path) ClosePath() {
	sp := p.current()
	if sp == nil {
		return
	}
	sp.Closed = true
	first := sp.Points[0]
	p.MoveTo(first.X, first.Y)
}

// Subpaths returns the flattened subpaths. A subpath holding a single point
// has no segments and draws nothing. The returned slice MUST NOT be mutated.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Bounds returns the bounding rectangle of every point in the path.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sp := range p.subpaths {
		for _, pt := range sp.Points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// arcSweep returns the signed angle an arc covers. A request spanning a full
// turn or more in the drawing direction is a whole circle.
func arcSweep(start, end float64, counterclockwise bool) float64 {
	const tau = 2 * math.Pi
	switch {
	case !counterclockwise && end-start >= tau:
		return tau
	case counterclockwise && start-end >= tau:
		return -tau
	case !counterclockwise && start > end:
		return tau - math.Mod(start-end, tau)
	case counterclockwise && start < end:
		return -(tau - math.Mod(end-start, tau))
	default:
		return end - start
	}
}

// arcSegments returns how many segments keep an arc of radius r within
// arcTolerance of the circle.
func arcSegments(r, sweep float64) int {
	if r <= arcTolerance {
		return 8
	}
	step := 2 * math.Acos(1-arcTolerance/r)
	n := int(math.Ceil(math.Abs(sweep) / step))
	return max(n, 8)
}

// signedArea returns twice the signed area of a closed polygon. Positive
// means clockwise on screen (Y down).
func signedArea(pts []Vec2) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a
}

// circlePolygon appends a clockwise polygon approximating a circle.
func circlePolygon(dst []Vec2, cx, cy, r float64) []Vec2 {
	n := arcSegments(r, 2*math.Pi)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, Vec2{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return dst
}

// strokePolygons expands a polyline into filled polygons: one quad per
// segment plus caps. Every polygon is clockwise so overlaps union.
func strokePolygons(pts []Vec2, closed bool, width float64, lineCap LineCap) [][]Vec2 {
	half := width / 2
	if half <= 0 || len(pts) < 2 {
		return nil
	}
	var polys [][]Vec2

	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	allSame := true
	for i := 1; i < len(pts); i++ {
		if pts[i] != pts[0] {
			allSame = false
			break
		}
	}
	if allSame {
		// A zero-length subpath only shows its caps.
		switch lineCap {
		case LineCapRound:
			polys = append(polys, circlePolygon(nil, pts[0].X, pts[0].Y, half))
		case LineCapSquare:
			c := pts[0]
			polys = append(polys, []Vec2{
				{c.X - half, c.Y - half}, {c.X + half, c.Y - half},
				{c.X + half, c.Y + half}, {c.X - half, c.Y + half},
			})
		}
		return polys
	}

	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		ux, uy := dx/l, dy/l
		if lineCap == LineCapSquare && !closed {
			if i == 0 {
				a.X -= ux * half
				a.Y -= uy * half
			}
			if i == segs-1 {
				b.X += ux * half
				b.Y += uy * half
			}
		}
		nx, ny := -uy*half, ux*half
		quad := []Vec2{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		}
		if signedArea(quad) < 0 {
			quad[0], quad[1], quad[2], quad[3] = quad[3], quad[2], quad[1], quad[0]
		}
		polys = append(polys, quad)
	}

	if lineCap == LineCapRound {
		for _, pt := range pts {
			polys = append(polys, circlePolygon(nil, pt.X, pt.Y, half))
		}
	}
	return polys
}

// clipPolygon clips a polygon to r (Sutherland-Hodgman). Clipping each
// polygon separately preserves non-zero coverage inside r.
func clipPolygon(pts []Vec2, r Rect) []Vec2 {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	pts = clipEdge(pts, func(p Vec2) bool { return p.X >= x0 }, func(a, b Vec2) Vec2 { return lerpX(a, b, x0) })
	pts = clipEdge(pts, func(p Vec2) bool { return p.X <= x1 }, func(a, b Vec2) Vec2 { return lerpX(a, b, x1) })
	pts = clipEdge(pts, func(p Vec2) bool { return p.Y >= y0 }, func(a, b Vec2) Vec2 { return lerpY(a, b, y0) })
	pts = clipEdge(pts, func(p Vec2) bool { return p.Y <= y1 }, func(a, b Vec2) Vec2 { return lerpY(a, b, y1) })
	return pts
}

func clipEdge(pts []Vec2, inside func(Vec2) bool, cross func(a, b Vec2) Vec2) []Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Vec2, 0, len(pts)+4)
	prev := pts[len(pts)-1]
	prevIn := inside(prev)
	for _, cur := range pts {
		curIn := inside(cur)
		switch {
		case curIn && !prevIn:
			out = append(out, cross(prev, cur), cur)
		case curIn:
			out = append(out, cur)
		case prevIn:
			out = append(out, cross(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func lerpX(a, b Vec2, x float64) Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return Vec2{x, a.Y + (b.Y-a.Y)*t}
}

func lerpY(a, b Vec2, y float64) Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return Vec2{a.X + (b.X-a.X)*t, y}
}
