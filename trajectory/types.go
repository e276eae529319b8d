package trajectory

// Point is a single 2-D detection, conventionally inside [0,W] x [0,H].
type Point struct {
	X, Y float64
}

// Frame is one ordered, index-addressed list of detections.
type Frame []Point

// Sequence is the immutable input to a solve: an image size and a finite
// ordered list of frames.
type Sequence struct {
	Width, Height int
	Frames        []Frame
}

// K returns the number of frames.
func (s *Sequence) K() int {
	return len(s.Frames)
}

// ImageArea returns Width * Height.
func (s *Sequence) ImageArea() int {
	return s.Width * s.Height
}

// N returns the number of detections in frame k.
func (s *Sequence) N(k int) int {
	return len(s.Frames[k])
}

// MaxN returns the largest per-frame detection count, used to size DP
// tables that are indexed by point index regardless of frame.
func (s *Sequence) MaxN() int {
	max := 0
	for _, f := range s.Frames {
		if len(f) > max {
			max = len(f)
		}
	}

	return max
}

// Mask tracks, per (frame, point index), whether a detection is still
// available for inclusion in a future trajectory. It starts all-true and
// is monotonically narrowed by Deactivate — an extracted point is never
// reactivated. Mask is the only mutable state shared across outer-loop
// iterations.
type Mask struct {
	active [][]bool
}

// NewMask builds a Mask with every detection in seq marked active.
func NewMask(seq *Sequence) *Mask {
	active := make([][]bool, len(seq.Frames))
	for k, f := range seq.Frames {
		row := make([]bool, len(f))
		for i := range row {
			row[i] = true
		}
		active[k] = row
	}

	return &Mask{active: active}
}

// Active reports whether detection (k, i) is still available.
func (m *Mask) Active(k, i int) bool {
	return m.active[k][i]
}

// Deactivate marks detection (k, i) as consumed. Idempotent.
func (m *Mask) Deactivate(k, i int) {
	m.active[k][i] = false
}

// StepKind tags what a Step in an output Trajectory represents.
type StepKind int

const (
	// StepRef is a reference to an observed point in a frame.
	StepRef StepKind = iota
	// StepNone marks a hole: the trajectory passes through this frame
	// without an observed detection. Never produced by the noholes solver.
	StepNone
	// StepInterp marks a display-only interpolated position. The core
	// extractor never constructs one; it exists purely so a host renderer
	// can attach interpolated coordinates to a Trajectory after the fact.
	StepInterp
)

// Step is one element of an extracted Trajectory.
type Step struct {
	Frame int // frame index this step occupies
	Index int // point index within that frame, valid only when Kind == StepRef
	Kind  StepKind
	X, Y  float64 // populated only for StepInterp
}

// Trajectory is an ordered, extracted sequence of Steps with its
// a-contrario score. The first and last Step are always StepRef.
type Trajectory struct {
	Start  int
	Steps  []Step
	LogNFA float64
}

// Span returns l: the number of frames from first to last step, inclusive.
func (t *Trajectory) Span() int {
	return len(t.Steps)
}

// Size returns s: the count of StepRef steps (observed points).
func (t *Trajectory) Size() int {
	n := 0
	for _, st := range t.Steps {
		if st.Kind == StepRef {
			n++
		}
	}

	return n
}

// Runs returns p: the count of maximal consecutive StepRef subsequences.
func (t *Trajectory) Runs() int {
	runs := 0
	inRun := false
	for _, st := range t.Steps {
		if st.Kind == StepRef {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	return runs
}
