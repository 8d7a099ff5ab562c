package termpaint

// mode holds the session flags the engine has switched on
type mode int

const (
	// Use alternate screen
	smcup mode = 1 << iota
	// Cursor hidden (DECTCEM reset)
	civis
)

// State is the rendering session state of an Engine
type State uint8

const (
	StateActive State = iota
	StateAlternate
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateAlternate:
		return "alternate"
	case StateTornDown:
		return "torn down"
	}
	return "unknown"
}

// Snapshot is the terminal state an Engine restores on teardown
type Snapshot struct {
	Ambient       Ambient
	CursorVisible bool
}
