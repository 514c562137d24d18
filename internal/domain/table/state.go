package table

// State is what a list screen should display.
type State int

const (
	StateReady State = iota
	StateLoading
	// StateError means the last fetch failed and there is nothing to show.
	StateError
	// StateNoData means the source returned no rows at all.
	StateNoData
	// StateNoMatch means rows exist but search or filters hide all of them.
	StateNoMatch
)

// DisplayState picks the display policy. Stale rows stay visible after a
// failed fetch, so an error only takes over the screen when total is zero.
func DisplayState(loading bool, err error, total, visible int) State {
	switch {
	case loading:
		return StateLoading
	case total == 0 && err != nil:
		return StateError
	case total == 0:
		return StateNoData
	case visible == 0:
		return StateNoMatch
	default:
		return StateReady
	}
}

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateNoData:
		return "no data"
	case StateNoMatch:
		return "no match"
	default:
		return "ready"
	}
}
