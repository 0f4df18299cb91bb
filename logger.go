package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

type logger struct {
	runLog    zerolog.Logger
	lookupLog zerolog.Logger
}

func (l *logger) RunStarted(summary geolib.RunSummary) {
	l.runLog.Info().
		Int("node_count", summary.NodeCount).
		Dur("request_delay", summary.RequestDelay).
		Int("per_minute", summary.PerMinute).
		Dur("estimated_total", summary.EstimatedTotal).
		Msg("Run has been started")

	if summary.OverflowRisk {
		l.runLog.Warn().
			Dur("estimated_total", summary.EstimatedTotal).
			Dur("time_budget", summary.TimeBudget).
			Msg("Estimated time exceeds a time budget")
	}
}

func (l *logger) NodeProcessing(position, total int, address string) {
	l.lookupLog.Info().
		Int("position", position).
		Int("total", total).
		Str("address", address).
		Msg("Processing a node")
}

func (l *logger) LookupFailed(address string, err error) {
	l.lookupLog.Error().Str("address", address).Err(err).Msg("")
}

func newLogger() geolib.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		runLog:    zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "run").Logger(),
		lookupLog: zerolog.New(os.Stderr).With().Timestamp().Stack().Str("event_name", "lookup").Logger(),
	}
}
