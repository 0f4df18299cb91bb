package geolib

import "time"

// Node is a single entry of a proxy subscription: a network address to
// geolocate and a display name shown to a user. Annotator never touches
// an address, only a name.
type Node struct {
	Address string
	Name    string
}

// RunSummary is an estimation of a single enrichment run. It is given
// to Logger before a run starts so an operator could tell in advance
// whether a run fits into a time budget.
type RunSummary struct {
	NodeCount      int
	RequestDelay   time.Duration
	PerMinute      int
	EstimatedTotal time.Duration
	TimeBudget     time.Duration
	OverflowRisk   bool
}
