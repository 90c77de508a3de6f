package history

import "time"

// Result is a single recorded benchmark mean.
type Result struct {
	Name   string `json:"name"`
	MeanNs uint64 `json:"mean_ns"`
}

// Run is a collection of results from a single benchmark invocation.
type Run struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Commit    string    `json:"commit,omitempty"` // Git commit hash
	Results   []Result  `json:"results"`
}
