package decision

// Verdict is the outcome of a run.
type Verdict int

const (
	// NoStructure means no closed loop exists.
	NoStructure Verdict = iota
	// CycleWins means the cycle area is strictly greater than the
	// reference area.
	CycleWins
	// ReferenceWins means the reference area is at least the cycle area.
	ReferenceWins
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case NoStructure:
		return "NoStructure"
	case CycleWins:
		return "CycleWins"
	case ReferenceWins:
		return "ReferenceWins"
	default:
		return "Verdict(?)"
	}
}

// Decide picks the verdict for a search that found (or did not find) a
// cycle of the given area.
func Decide(found bool, cycleArea, refArea float64) Verdict {
	if !found {
		return NoStructure
	}
	if cycleArea > refArea {
		return CycleWins
	}

	return ReferenceWins
}

// Default verdict labels.
const (
	DefaultCycleLabel     = "Kalyan"
	DefaultReferenceLabel = "Computer"
	DefaultNoneLabel      = "Abandoned"
)

// Labels are the words reported for each verdict.
type Labels struct {
	Cycle     string
	Reference string
	None      string
}

// DefaultLabels returns Kalyan, Computer and Abandoned.
func DefaultLabels() Labels {
	return Labels{
		Cycle:     DefaultCycleLabel,
		Reference: DefaultReferenceLabel,
		None:      DefaultNoneLabel,
	}
}

// For returns the label of v. Unknown verdicts get the None label.
func (l Labels) For(v Verdict) string {
	switch v {
	case CycleWins:
		return l.Cycle
	case ReferenceWins:
		return l.Reference
	default:
		return l.None
	}
}
