package clock

import (
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/fractal-clock/render"
	"github.com/lixenwraith/fractal-clock/vmath"
)

const secondsPerDay = 86400.0

// Zoom below this floor would blow the logical viewport up to infinity
const minZoom = 1e-6

// Segment is one drawable line in screen coordinates
type Segment struct {
	A, B  vmath.Vec2
	Color render.RGBA
	Width float64
}

// Node carries a branch endpoint and the displacement that produced it
// between fractal depth levels
type Node struct {
	Pos, Dir vmath.Vec2
}

// Engine computes the fractal clock geometry. It owns the configuration,
// the frozen/live time sample, the lazily rebuilt depth color schedule and
// the reusable node/segment buffers. Single-threaded: one Render at a time.
type Engine struct {
	cfg Config
	clk clockwork.Clock

	timeOfDay float64 // seconds since local midnight
	timeValid bool

	colorsDirty bool
	depthColors []render.RGBA

	curNodes  []Node
	nextNodes []Node
	segments  []Segment

	lineCount int
	paintTime time.Duration
}

// New creates an engine with the given configuration. A nil clk falls back
// to the real wall clock; tests inject a fake one.
func New(cfg Config, clk clockwork.Clock) *Engine {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	e := &Engine{
		cfg:         cfg,
		clk:         clk,
		colorsDirty: true,
		depthColors: make([]render.RGBA, 0, MaxDepth),
		curNodes:    make([]Node, 0, 1<<16),
		nextNodes:   make([]Node, 0, 1<<16),
		segments:    make([]Segment, 0, 1<<16),
	}
	// Seed the sample so a clock created paused still shows the current time
	e.SetTimeOfDay(secondsSinceMidnight(clk.Now()))
	return e
}

// Advance samples the wall clock unless paused. Returns true when the host
// should schedule another frame (continuous animation), false while paused.
// Resuming picks up the live clock, not the frozen sample.
func (e *Engine) Advance() bool {
	if e.cfg.Paused {
		return false
	}
	e.SetTimeOfDay(secondsSinceMidnight(e.clk.Now()))
	return true
}

// SetTimeOfDay installs an explicit time sample in seconds since midnight.
// Finite values wrap into [0, 86400); NaN and ±Inf mark the time invalid,
// which suppresses segment output until a valid sample arrives.
func (e *Engine) SetTimeOfDay(sec float64) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		e.timeValid = false
		return
	}
	sec = math.Mod(sec, secondsPerDay)
	if sec < 0 {
		sec += secondsPerDay
	}
	e.timeOfDay = sec
	e.timeValid = true
}

// TimeOfDay returns the current sample in seconds since midnight
func (e *Engine) TimeOfDay() float64 {
	return e.timeOfDay
}

// Config returns a copy of the current configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig swaps the configuration. The color schedule is only marked dirty
// here; the rebuild happens at the top of the next Render (keeping the
// recompute-if-dirty guard in one place instead of on every setter).
func (e *Engine) SetConfig(cfg Config) {
	if !e.cfg.scheduleEquals(cfg) {
		e.colorsDirty = true
	}
	e.cfg = cfg
}

// LineCount returns the number of segments emitted by the last Render
func (e *Engine) LineCount() int {
	return e.lineCount
}

// PaintTime returns the duration of the last Render
func (e *Engine) PaintTime() time.Duration {
	return e.paintTime
}

// TimeString formats the current sample as HH:MM:SS.mmm for the diagnostic
// label, or a placeholder when the sample is invalid
func (e *Engine) TimeString() string {
	if !e.timeValid {
		return "invalid time"
	}
	// Round to whole milliseconds first so e.g. 86399.999 (stored as
	// 86399.99899...) does not truncate to .998; the modulo carries a
	// round-up at the day boundary back to midnight
	total := int64(math.Round(e.timeOfDay*1000)) % (1000 * int64(secondsPerDay))
	h := total / 3600000
	m := total / 60000 % 60
	s := total / 1000 % 60
	ms := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// Render produces the frame's segments in screen coordinates. The returned
// slice is reused across frames; hosts must consume it before the next call.
// Segments whose bounding box misses the clip rect are culled.
func (e *Engine) Render(clip vmath.Rect) []Segment {
	start := time.Now()

	if e.colorsDirty {
		e.depthColors = computeSchedule(&e.cfg, e.depthColors)
		e.colorsDirty = false
	}

	e.segments = e.segments[:0]
	e.curNodes = e.curNodes[:0]
	e.nextNodes = e.nextNodes[:0]

	if !e.timeValid {
		e.lineCount = 0
		e.paintTime = time.Since(start)
		return e.segments
	}

	zoom := e.cfg.Zoom
	if zoom < minZoom {
		zoom = minZoom
	}
	logical := vmath.RectFromCenterSize(vmath.Vec2{}, clip.SquareProportions().Scale(1/zoom))
	toScreen := vmath.NewRectTransform(logical, clip)

	hands := Hands(e.timeOfDay, e.cfg.LengthFactor)
	e.drawHands(hands, toScreen, clip)
	e.drawBranches(handRotors(hands), toScreen, clip)

	e.lineCount = len(e.segments)
	e.paintTime = time.Since(start)
	return e.segments
}

// drawHands emits the three hand segments and seeds the root nodes from the
// second and minute hand tips. The hour hand only sets the reference frame.
func (e *Engine) drawHands(hands [3]Hand, toScreen vmath.RectTransform, clip vmath.Rect) {
	center := vmath.Vec2{}
	screenCenter := toScreen.Apply(center)

	for i, hand := range hands {
		end := center.Add(hand.Vec)
		screenEnd := toScreen.Apply(end)

		if clip.Intersects(vmath.RectFromPoints(screenCenter, screenEnd)) {
			e.segments = append(e.segments, Segment{
				A:     screenCenter,
				B:     screenEnd,
				Color: e.cfg.HandColor,
				Width: e.cfg.StartLineWidth,
			})
		}

		if i < 2 {
			e.curNodes = append(e.curNodes, Node{Pos: end, Dir: hand.Vec})
		}
	}
}

// drawBranches runs the per-depth fractal expansion: each rotor applied to
// each node of the current generation produces the next, double-buffering
// the node slices to avoid per-frame allocation.
func (e *Engine) drawBranches(rotors [2]vmath.Rotor, toScreen vmath.RectTransform, clip vmath.Rect) {
	cur, next := e.curNodes, e.nextNodes
	width := e.cfg.StartLineWidth

	for _, color := range e.depthColors {
		next = next[:0]
		width *= e.cfg.WidthFactor

		for _, rotor := range rotors {
			for _, node := range cur {
				dir := rotor.Apply(node.Dir)
				child := Node{Pos: node.Pos.Add(dir), Dir: dir}

				a := toScreen.Apply(node.Pos)
				b := toScreen.Apply(child.Pos)
				if clip.Intersects(vmath.RectFromPoints(a, b)) {
					e.segments = append(e.segments, Segment{A: a, B: b, Color: color, Width: width})
				}

				next = append(next, child)
			}
		}

		cur, next = next, cur
	}

	// Keep the grown backing arrays for the next frame
	e.curNodes, e.nextNodes = cur, next
}

// secondsSinceMidnight converts a wall-clock instant to the engine's
// fractional time-of-day scalar
func secondsSinceMidnight(t time.Time) float64 {
	h, m, s := t.Clock()
	return float64(h*3600+m*60+s) + float64(t.Nanosecond())/1e9
}
