package targeting

const (
	DefaultCellSize       = 80.0
	DefaultMoveStep       = 5.0
	DefaultFastMultiplier = 2.0
)

// Options tunes the targeting levels.
type Options struct {
	// CellSize is the target edge length of a coarse cell.
	CellSize float64
	// MoveStep is the per-frame displacement at normal speed.
	MoveStep float64
	// FastMultiplier scales MoveStep while shift is held.
	FastMultiplier float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		CellSize:       DefaultCellSize,
		MoveStep:       DefaultMoveStep,
		FastMultiplier: DefaultFastMultiplier,
	}
}

// withDefaults fills unset or non-positive fields.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if !(o.CellSize > 0) {
		o.CellSize = d.CellSize
	}
	if !(o.MoveStep > 0) {
		o.MoveStep = d.MoveStep
	}
	if !(o.FastMultiplier > 0) {
		o.FastMultiplier = d.FastMultiplier
	}
	return o
}

// Cell is one labelled cell of the active level, for painting.
type Cell struct {
	Label string
	Rect  Rect
}
