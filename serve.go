package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/Fatty911/nodes-subconverter/api"
	"github.com/Fatty911/nodes-subconverter/config"
	"github.com/Fatty911/nodes-subconverter/geolib"
)

func runServer(ctx context.Context, conf *config.Config, annotator *geolib.Annotator) error {
	handler := api.NewHandler(annotator, version, conf.TimeBudget.Duration)

	if conf.BasicAuth.Enabled() {
		handler = newBasicAuthMiddleware(handler,
			conf.BasicAuth.User,
			conf.BasicAuth.Password)
	}

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background()) // nolint: errcheck
	}()

	log.WithFields(log.Fields{
		"addr":     conf.Listen,
		"provider": conf.Provider,
	}).Info("Start a server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("cannot run a server: %w", err)
	}

	return nil
}
