package geolib

import (
	"context"
	"time"
)

// AnnotatorOpts is a set of options for NewAnnotator. Provider is the
// only mandatory field, everything else has a usable default.
type AnnotatorOpts struct {
	Provider   Provider
	Logger     Logger
	Rate       RateConfig
	TimeBudget time.Duration
	Sleeper    Sleeper
}

// Annotator walks a node list strictly one by one: geolocates an
// address, rewrites a display name, pauses, moves on. There is no
// concurrency here on purpose, a single upstream rate limit budget
// covers a whole run.
type Annotator struct {
	provider   Provider
	logger     Logger
	rate       RateConfig
	timeBudget time.Duration
	sleeper    Sleeper
	stats      *UsageStats
}

// AnnotateAll returns a new node list of the same length and order
// where every display name is rewritten according to a lookup outcome.
// Addresses are copied as is.
//
// Per-node failures do not interrupt a run, they are absorbed into
// failure marks. The only way to get an error here is a closed
// context: in that case no result is returned at all, partial progress
// is lost.
//
// An empty input produces an empty output and no lookups.
func (a *Annotator) AnnotateAll(ctx context.Context, nodes []Node) ([]Node, error) {
	if len(nodes) == 0 {
		return []Node{}, nil
	}

	a.logger.RunStarted(a.rate.Summarize(len(nodes), a.timeBudget))

	annotated := make([]Node, 0, len(nodes))

	for i, node := range nodes {
		if ctx.Err() != nil {
			return nil, ErrContextIsClosed
		}

		a.logger.NodeProcessing(i+1, len(nodes), node.Address)

		location, err := a.provider.Lookup(ctx, node.Address)

		if ctx.Err() != nil {
			return nil, ErrContextIsClosed
		}

		a.stats.Used(err)

		if err != nil {
			a.logger.LookupFailed(node.Address, err)
		}

		annotated = append(annotated, Node{
			Address: node.Address,
			Name:    RewriteName(node.Name, location, err),
		})

		if i != len(nodes)-1 {
			if err := a.sleeper.Sleep(ctx, a.rate.RequestDelay); err != nil {
				return nil, ErrContextIsClosed
			}
		}
	}

	return annotated, nil
}

// Summarize estimates a run over a given node count without starting
// it.
func (a *Annotator) Summarize(nodeCount int) RunSummary {
	return a.rate.Summarize(nodeCount, a.timeBudget)
}

// Stats returns usage statistics of the underlying provider.
func (a *Annotator) Stats() *UsageStats {
	return a.stats
}

func NewAnnotator(opts AnnotatorOpts) (*Annotator, error) {
	if opts.Provider == nil {
		return nil, ErrProviderIsRequired
	}

	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = timerSleeper{}
	}

	timeBudget := opts.TimeBudget
	if timeBudget <= 0 {
		timeBudget = DefaultTimeBudget
	}

	return &Annotator{
		provider:   opts.Provider,
		logger:     logger,
		rate:       opts.Rate.withDefaults(),
		timeBudget: timeBudget,
		sleeper:    sleeper,
		stats:      &UsageStats{Name: opts.Provider.Name()},
	}, nil
}

type nopLogger struct{}

func (n nopLogger) RunStarted(RunSummary)           {}
func (n nopLogger) NodeProcessing(int, int, string) {}
func (n nopLogger) LookupFailed(string, error)      {}
