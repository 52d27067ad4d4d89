package weatheroverlay

import (
	"math"
	"testing"
)

func TestPathMoveLine(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.MoveTo(5, 6)
	p.LineTo(7, 8)

	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2", len(sps))
	}
	if len(sps[0].Points) != 2 || sps[0].Points[1] != (Vec2{3, 4}) {
		t.Errorf("subpath 0 = %v", sps[0].Points)
	}
	if sps[1].Points[0] != (Vec2{5, 6}) {
		t.Errorf("subpath 1 = %v", sps[1].Points)
	}
}

func TestPathLineToWithoutMove(t *testing.T) {
	var p Path
	p.LineTo(3, 4)
	sps := p.Subpaths()
	if len(sps) != 1 || len(sps[0].Points) != 1 || sps[0].Points[0] != (Vec2{3, 4}) {
		t.Errorf("Subpaths = %v, want a single point at (3, 4)", sps)
	}
}

func TestPathBeginPathReusesBuffers(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.BeginPath()
	if len(p.Subpaths()) != 0 {
		t.Fatalf("Subpaths after BeginPath = %v", p.Subpaths())
	}
	p.MoveTo(9, 9)
	sps := p.Subpaths()
	if len(sps) != 1 || len(sps[0].Points) != 1 || sps[0].Points[0] != (Vec2{9, 9}) {
		t.Errorf("Subpaths = %v, want a fresh subpath at (9, 9)", sps)
	}

	allocs := testing.AllocsPerRun(100, func() {
		p.BeginPath()
		p.MoveTo(0, 0)
		p.LineTo(1, 1)
	})
	if allocs > 0 {
		t.Errorf("allocs per rebuilt path = %v, want 0", allocs)
	}
}

func TestPathClosePath(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()
	p.LineTo(0, 10)

	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2", len(sps))
	}
	if !sps[0].Closed {
		t.Error("first subpath should be closed")
	}
	if sps[1].Points[0] != (Vec2{0, 0}) {
		t.Errorf("subpath after ClosePath starts at %v, want (0, 0)", sps[1].Points[0])
	}
}

func TestPathArcFullCircle(t *testing.T) {
	for _, ccw := range []bool{false, true} {
		var p Path
		p.Arc(50, 50, 10, 0, 2*math.Pi, ccw)
		sps := p.Subpaths()
		if len(sps) != 1 {
			t.Fatalf("ccw=%v: len(Subpaths) = %d, want 1", ccw, len(sps))
		}
		pts := sps[0].Points
		if len(pts) < 9 {
			t.Fatalf("ccw=%v: %d points, want a flattened circle", ccw, len(pts))
		}
		for i, pt := range pts {
			d := math.Hypot(pt.X-50, pt.Y-50)
			if math.Abs(d-10) > 1e-9 {
				t.Errorf("ccw=%v: point %d at distance %v, want 10", ccw, i, d)
			}
		}
		b := p.Bounds()
		// Flattening may cut the extremes by up to arcTolerance.
		if b.Width < 20-2*arcTolerance || b.Width > 20+1e-9 ||
			b.Height < 20-2*arcTolerance || b.Height > 20+1e-9 {
			t.Errorf("ccw=%v: Bounds = %v, want a 20x20 box", ccw, b)
		}
	}
}

func TestPathArcJoinsCurrentPoint(t *testing.T) {
	var p Path
	p.MoveTo(50, 50)
	p.Arc(50, 50, 10, 0, math.Pi, false)
	pts := p.Subpaths()[0].Points
	if pts[0] != (Vec2{50, 50}) || pts[1] != (Vec2{60, 50}) {
		t.Errorf("arc start = %v, %v; want the current point then (60, 50)", pts[0], pts[1])
	}
}

func TestPathArcNegativeRadiusIgnored(t *testing.T) {
	var p Path
	p.Arc(0, 0, -1, 0, math.Pi, false)
	if len(p.Subpaths()) != 0 {
		t.Errorf("Subpaths = %v, want none", p.Subpaths())
	}
}

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"cw half", 0, math.Pi, false, math.Pi},
		{"ccw half", math.Pi, 0, true, -math.Pi},
		{"cw full", 0, 2 * math.Pi, false, 2 * math.Pi},
		{"ccw full from positive end", 0, 2 * math.Pi, true, -2 * math.Pi},
		{"cw wraps", math.Pi, math.Pi / 2, false, 1.5 * math.Pi},
		{"ccw wraps", 0, math.Pi / 2, true, -1.5 * math.Pi},
		{"empty", 1, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "arcSweep", arcSweep(tt.start, tt.end, tt.ccw), tt.want)
		})
	}
}

func TestStrokePolygons(t *testing.T) {
	line := []Vec2{{0, 0}, {10, 0}}

	butt := strokePolygons(line, false, 2, LineCapButt)
	if len(butt) != 1 {
		t.Fatalf("butt: %d polygons, want 1", len(butt))
	}
	if signedArea(butt[0]) <= 0 {
		t.Error("butt quad should be clockwise")
	}

	square := strokePolygons(line, false, 2, LineCapSquare)
	b := polygonBounds(square)
	assertNear(t, "square cap X", b.X, -1)
	assertNear(t, "square cap width", b.Width, 12)

	round := strokePolygons(line, false, 2, LineCapRound)
	if len(round) != 3 {
		t.Errorf("round: %d polygons, want quad + 2 caps", len(round))
	}

	dot := strokePolygons([]Vec2{{5, 5}, {5, 5}}, false, 4, LineCapRound)
	if len(dot) != 1 {
		t.Errorf("zero-length round: %d polygons, want 1", len(dot))
	}
	if got := strokePolygons([]Vec2{{5, 5}, {5, 5}}, false, 4, LineCapButt); len(got) != 0 {
		t.Errorf("zero-length butt: %d polygons, want none", len(got))
	}
	if got := strokePolygons([]Vec2{{5, 5}}, false, 4, LineCapRound); got != nil {
		t.Error("single point should not stroke")
	}
}

func TestClipPolygon(t *testing.T) {
	square := []Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	got := clipPolygon(square, Rect{0, 0, 5, 5})
	b := polygonBounds([][]Vec2{got})
	if b != (Rect{0, 0, 5, 5}) {
		t.Errorf("clipped bounds = %v, want {0 0 5 5}", b)
	}
	assertNear(t, "area", math.Abs(signedArea(got))/2, 25)

	if out := clipPolygon(square, Rect{100, 100, 5, 5}); len(out) != 0 {
		t.Errorf("disjoint clip = %v, want empty", out)
	}
}
