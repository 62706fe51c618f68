package model

// Loader runs Inspect off the frame loop and hands the result back to it through callbacks.
// OnLoad does the main-thread work (the GPU upload); an error from it is routed to OnError.
type Loader struct {
	// Resolve, when set, maps the requested path to a local file (for example by downloading it).
	Resolve func(string) (string, error)
	OnLoad  func(Info) error
	OnError func(error)

	pending <-chan Result
}

// Start begins inspecting path, replacing any load still in flight.
func (l *Loader) Start(path string) {
	l.pending = InspectAsync(path, l.Resolve)
}

// Pending reports whether a started load has not been delivered yet.
func (l *Loader) Pending() bool {
	return l.pending != nil
}

// Poll delivers a finished load without blocking. It returns true on the frame the result is handled.
func (l *Loader) Poll() bool {
	if l.pending == nil {
		return false
	}
	select {
	case res := <-l.pending:
		l.pending = nil
		l.dispatch(res)
		return true
	default:
		return false
	}
}

func (l *Loader) dispatch(res Result) {
	err := res.Err
	if err == nil && l.OnLoad != nil {
		err = l.OnLoad(res.Info)
	}
	if err != nil && l.OnError != nil {
		l.OnError(err)
	}
}
