package model

import "time"

// RepoStatus is a point-in-time view of one tracked repository's polling state,
// exposed by the status endpoint.
type RepoStatus struct {
	RepoFullName string    `json:"repo"`
	Interval     string    `json:"interval"`
	Cycles       int       `json:"cycles"`
	LastRun      time.Time `json:"last_run,omitzero"`
	NextRun      time.Time `json:"next_run,omitzero"`
	Checked      int       `json:"checked"`
	Skipped      int       `json:"skipped"`
	Updated      int       `json:"updated"`
	Failed       int       `json:"failed"`
	LastError    string    `json:"last_error,omitempty"`
}
