package weatheroverlay

import (
	"encoding/json"
	"fmt"
)

// Default script canvas size.
const (
	DefaultScriptWidth  = 640
	DefaultScriptHeight = 360
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	State  string `json:"state,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// script is the top-level JSON structure of a script.
type script struct {
	Width  int          `json:"width,omitempty"`
	Height int          `json:"height,omitempty"`
	Seed   uint64       `json:"seed,omitempty"`
	Steps  []scriptStep `json:"steps"`
}

// ScriptRunner plays a scripted sequence of weather states onto a
// RasterSurface frame by frame, without timers, and captures screenshots.
//
// Actions:
//
//	{"action": "state", "state": "rainy"}         select and build new effects
//	{"action": "wait", "frames": 30}              draw 30 frames
//	{"action": "screenshot", "label": "rain"}     write a PNG of the last frame
//	{"action": "resize", "width": 320, "height": 200}
type ScriptRunner struct {
	steps   []scriptStep
	width   int
	height  int
	seed    uint64
	surface *RasterSurface
	frames  int
	done    bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("weatheroverlay: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("weatheroverlay: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "state", "wait", "screenshot":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("weatheroverlay: parse script: step %d: resize needs a positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("weatheroverlay: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	r := &ScriptRunner{
		steps:  sc.Steps,
		width:  sc.Width,
		height: sc.Height,
		seed:   sc.Seed,
	}
	if r.width <= 0 {
		r.width = DefaultScriptWidth
	}
	if r.height <= 0 {
		r.height = DefaultScriptHeight
	}
	return r, nil
}

// Run executes every step, writing screenshots into dir, and returns the
// paths written.
func (r *ScriptRunner) Run(dir string) ([]string, error) {
	rng := NewRand(r.seed)
	r.surface = NewRasterSurface(r.width, r.height)
	var (
		shots   []string
		sel     Selection
		hasSel  bool
		effects []Effect
	)
	build := func() {
		if hasSel {
			effects = sel.Build(float64(r.width), float64(r.height), rng)
		}
	}

	for _, st := range r.steps {
		switch st.Action {
		case "state":
			sel, hasSel = Select(st.State), true
			build()
		case "wait":
			for i := 0; i < max(st.Frames, 1); i++ {
				DrawFrame(r.surface, float64(r.width), float64(r.height), effects)
				r.frames++
			}
		case "screenshot":
			label := st.Label
			if label == "" && hasSel {
				label = sel.State
			}
			path, err := SaveScreenshot(dir, label, r.surface.Image())
			if err != nil {
				return shots, err
			}
			shots = append(shots, path)
		case "resize":
			r.width, r.height = st.Width, st.Height
			r.surface = NewRasterSurface(r.width, r.height)
			build()
		}
	}
	r.done = true
	return shots, nil
}

// Done reports whether Run has executed every step.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Frames returns the number of frames drawn so far.
func (r *ScriptRunner) Frames() int {
	return r.frames
}

// Surface returns the surface of the last Run, or nil before Run.
func (r *ScriptRunner) Surface() *RasterSurface {
	return r.surface
}
