package conversion

import "time"

// Window is the half-open interval [Start, End) during which conversions are permitted
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	return nil
}

// Contains reports whether t falls within the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
