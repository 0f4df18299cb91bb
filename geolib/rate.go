package geolib

import "time"

const (
	// DefaultRequestDelay is a pause between two sequential lookups.
	// 1500ms keeps a run at 40 requests per minute which stays below a
	// free tier allowance of ip-api.com.
	DefaultRequestDelay = 1500 * time.Millisecond

	// DefaultReferencePerMinute is a documented allowance of a free
	// geolocation tier. This value is used for reporting only, pacing
	// is driven by a request delay.
	DefaultReferencePerMinute = 45

	// DefaultTimeBudget is a wall clock limit a single run should fit
	// into. Serverless runtimes terminate a handler at about this
	// mark.
	DefaultTimeBudget = 50 * time.Second

	// DefaultHTTPTimeout is a timeout for a single geolocation query.
	DefaultHTTPTimeout = 10 * time.Second
)

// RateConfig describes pacing of a sequential enrichment run. A zero
// value means defaults.
type RateConfig struct {
	// RequestDelay is a pause inserted after each processed node
	// except the last one.
	RequestDelay time.Duration

	// ReferencePerMinute is an upstream allowance. Informational.
	ReferencePerMinute int
}

func (r RateConfig) withDefaults() RateConfig {
	if r.RequestDelay <= 0 {
		r.RequestDelay = DefaultRequestDelay
	}

	if r.ReferencePerMinute <= 0 {
		r.ReferencePerMinute = DefaultReferencePerMinute
	}

	return r
}

// EffectivePerMinute is an actual request rate implied by a request
// delay. Real spacing of requests is a delay plus a lookup latency so
// this number is an upper bound and a margin against an upstream
// limit.
func (r RateConfig) EffectivePerMinute() int {
	r = r.withDefaults()

	return int(time.Minute / r.RequestDelay)
}

// EstimateTotal is a lower bound of a run wall clock time for a given
// node count. Lookup latencies come on top of it.
func (r RateConfig) EstimateTotal(nodeCount int) time.Duration {
	if nodeCount <= 0 {
		return 0
	}

	r = r.withDefaults()

	return time.Duration(nodeCount) * r.RequestDelay
}

// Summarize builds a RunSummary for a given node count and a time
// budget. An overflow is advisory: a run proceeds even if it is not
// going to fit.
func (r RateConfig) Summarize(nodeCount int, budget time.Duration) RunSummary {
	r = r.withDefaults()

	if budget <= 0 {
		budget = DefaultTimeBudget
	}

	estimated := r.EstimateTotal(nodeCount)

	return RunSummary{
		NodeCount:      nodeCount,
		RequestDelay:   r.RequestDelay,
		PerMinute:      r.EffectivePerMinute(),
		EstimatedTotal: estimated,
		TimeBudget:     budget,
		OverflowRisk:   estimated > budget,
	}
}
