// Package input provides backend-neutral keyboard and pointer state.
//
// A window backend produces one Snapshot per frame. Tracker keeps the previous
// and current snapshot so key presses can be detected as edges without
// per-key bookkeeping in game code.
package input

// Key is a key the scene reacts to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyLeftShift
	KeyEqual
	KeyMinus
	KeyF
	KeyG
	KeyEscape

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyLeftShift: "LeftShift",
	KeyEqual:     "=",
	KeyMinus:     "-",
	KeyF:         "F",
	KeyG:         "G",
	KeyEscape:    "Escape",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Snapshot is the input state sampled once per frame.
type Snapshot struct {
	Keys [KeyCount]bool

	// Cursor position in window pixels. Backends with relative mouse motion
	// accumulate it into a virtual cursor.
	CursorX, CursorY float64
	HasCursor        bool

	// ScrollY is the wheel movement accumulated since the previous snapshot.
	ScrollY float32

	Quit    bool
	Resized bool
	Width   int
	Height  int

	// FocusGained is set on the frame the window regains keyboard focus.
	FocusGained bool
}

// Down reports whether k was held in this snapshot.
func (s Snapshot) Down(k Key) bool {
	return k >= 0 && k < KeyCount && s.Keys[k]
}

// Tracker holds the previous and current snapshots.
type Tracker struct {
	prev Snapshot
	cur  Snapshot
}

// Advance makes next the current snapshot.
func (t *Tracker) Advance(next Snapshot) {
	t.prev = t.cur
	t.cur = next
}

// Current returns the latest snapshot.
func (t *Tracker) Current() Snapshot {
	return t.cur
}

// Down reports whether k is held now.
func (t *Tracker) Down(k Key) bool {
	return t.cur.Down(k)
}

// JustPressed reports a false→true transition of k.
func (t *Tracker) JustPressed(k Key) bool {
	return t.cur.Down(k) && !t.prev.Down(k)
}

// Pointer turns absolute cursor positions into look deltas.
// The first sample after construction or Reset only calibrates and yields a
// zero delta, so the initial cursor jump does not spin the camera.
type Pointer struct {
	lastX, lastY float64
	calibrated   bool
}

// Sample returns (x - lastX, lastY - y); screen Y grows downward.
func (p *Pointer) Sample(x, y float64) (dx, dy float32) {
	if !p.calibrated {
		p.lastX, p.lastY = x, y
		p.calibrated = true
		return 0, 0
	}
	dx = float32(x - p.lastX)
	dy = float32(p.lastY - y)
	p.lastX, p.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a calibration sample again.
func (p *Pointer) Reset() {
	p.calibrated = false
}
