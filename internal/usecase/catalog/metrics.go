package catalog

import "time"

// Recorder receives search session telemetry.
type Recorder interface {
	ObserveRecompute(status Status, d time.Duration)
	ObserveFetch(err error, d time.Duration)
	IncDiscarded()
	SetSessions(n int)
}

type NopRecorder struct{}

func (NopRecorder) ObserveRecompute(Status, time.Duration) {}
func (NopRecorder) ObserveFetch(error, time.Duration)      {}
func (NopRecorder) IncDiscarded()                          {}
func (NopRecorder) SetSessions(int)                        {}
