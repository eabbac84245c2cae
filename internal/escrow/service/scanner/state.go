package scanner

// state is the position of the scanner in its batch cycle:
// idle -> fetching -> classifying -> persisting -> idle ... -> done.
type state int

const (
	stateIdle state = iota
	stateFetching
	stateClassifying
	statePersisting
	stateDone
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateFetching:
		return "fetching"
	case stateClassifying:
		return "classifying"
	case statePersisting:
		return "persisting"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}
