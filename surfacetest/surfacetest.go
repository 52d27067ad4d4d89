// Package surfacetest provides a recording Surface for tests of code that
// draws onto a weatheroverlay.Surface.
package surfacetest

import (
	"fmt"
	"sync"

	"github.com/phanxgames/weatheroverlay"
)

// Op is one recorded Surface call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Paint weatheroverlay.Paint
	// Alpha is the global alpha in effect when the call was made.
	Alpha float64
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q, %v)", o.Name, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

var _ weatheroverlay.Surface = (*Recorder)(nil)

// Recorder is a Surface that records every call and tracks drawing state.
// It is safe for concurrent use so tests can inspect it while a scheduler
// ticks.
type Recorder struct {
	mu       sync.Mutex
	ops      []Op
	counts   map[string]int
	alpha    float64
	fill     weatheroverlay.Paint
	stroke   weatheroverlay.Color
	width    float64
	lineCap  weatheroverlay.LineCap
	font     weatheroverlay.Font
	align    weatheroverlay.TextAlign
	baseline weatheroverlay.TextBaseline
	// Limit caps how many ops are kept; counts are always updated. Zero keeps
	// everything.
	Limit int
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{counts: make(map[string]int), alpha: 1, width: 1}
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op.Alpha = r.alpha
	r.counts[op.Name]++
	if r.Limit == 0 || len(r.ops) < r.Limit {
		r.ops = append(r.ops, op)
	}
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// OpsNamed returns the recorded calls with the given name.
func (r *Recorder) OpsNamed(name string) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Op
	for _, op := range r.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Reset forgets every recorded call. Drawing state is kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = r.ops[:0]
	clear(r.counts)
}

// State returns the current fill style, global alpha, and text settings.
func (r *Recorder) State() (fill weatheroverlay.Paint, alpha float64, font weatheroverlay.Font, align weatheroverlay.TextAlign, baseline weatheroverlay.TextBaseline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fill, r.alpha, r.font, r.align, r.baseline
}

// StrokeState returns the current stroke color, line width, and cap.
func (r *Recorder) StrokeState() (weatheroverlay.Color, float64, weatheroverlay.LineCap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stroke, r.width, r.lineCap
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Name: "ClearRect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.mu.Lock()
	p := r.fill
	r.mu.Unlock()
	r.record(Op{Name: "FillRect", Args: []float64{x, y, w, h}, Paint: p})
}

func (r *Recorder) SetFillStyle(p weatheroverlay.Paint) {
	r.mu.Lock()
	r.fill = p
	r.mu.Unlock()
	r.record(Op{Name: "SetFillStyle", Paint: p})
}

func (r *Recorder) SetStrokeStyle(c weatheroverlay.Color) {
	r.mu.Lock()
	r.stroke = c
	r.mu.Unlock()
	r.record(Op{Name: "SetStrokeStyle", Paint: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.mu.Lock()
	r.width = w
	r.mu.Unlock()
	r.record(Op{Name: "SetLineWidth", Args: []float64{w}})
}

func (r *Recorder) SetLineCap(c weatheroverlay.LineCap) {
	r.mu.Lock()
	r.lineCap = c
	r.mu.Unlock()
	r.record(Op{Name: "SetLineCap", Args: []float64{float64(c)}})
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	r.mu.Lock()
	r.alpha = a
	r.mu.Unlock()
	r.record(Op{Name: "SetGlobalAlpha", Args: []float64{a}})
}

func (r *Recorder) SetFont(f weatheroverlay.Font) {
	r.mu.Lock()
	r.font = f
	r.mu.Unlock()
	r.record(Op{Name: "SetFont", Text: f.Family, Args: []float64{f.Size}})
}

func (r *Recorder) SetTextAlign(a weatheroverlay.TextAlign) {
	r.mu.Lock()
	r.align = a
	r.mu.Unlock()
	r.record(Op{Name: "SetTextAlign", Args: []float64{float64(a)}})
}

func (r *Recorder) SetTextBaseline(b weatheroverlay.TextBaseline) {
	r.mu.Lock()
	r.baseline = b
	r.mu.Unlock()
	r.record(Op{Name: "SetTextBaseline", Args: []float64{float64(b)}})
}

func (r *Recorder) BeginPath() { r.record(Op{Name: "BeginPath"}) }

func (r *Recorder) MoveTo(x, y float64) { r.record(Op{Name: "MoveTo", Args: []float64{x, y}}) }

func (r *Recorder) LineTo(x, y float64) { r.record(Op{Name: "LineTo", Args: []float64{x, y}}) }

func (r *Recorder) Arc(x, y, radius, start, end float64, counterclockwise bool) {
	ccw := 0.0
	if counterclockwise {
		ccw = 1
	}
	r.record(Op{Name: "Arc", Args: []float64{x, y, radius, start, end, ccw}})
}

func (r *Recorder) ClosePath() { r.record(Op{Name: "ClosePath"}) }

func (r *Recorder) Fill() { r.record(Op{Name: "Fill"}) }

func (r *Recorder) Stroke() { r.record(Op{Name: "Stroke"}) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.record(Op{Name: "FillText", Text: text, Args: []float64{x, y}})
}
