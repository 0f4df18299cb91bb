package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fatty911/nodes-subconverter/config"
	"github.com/Fatty911/nodes-subconverter/geolib"
	"github.com/Fatty911/nodes-subconverter/providers"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeAnnotator(conf *config.Config) (*geolib.Annotator, error) {
	provider, err := makeProvider(conf)
	if err != nil {
		return nil, fmt.Errorf("cannot create a provider: %w", err)
	}

	return geolib.NewAnnotator(geolib.AnnotatorOpts{
		Provider:   provider,
		Logger:     newLogger(),
		Rate:       conf.Rate(),
		TimeBudget: conf.TimeBudget.Duration,
	})
}

func makeProvider(conf *config.Config) (geolib.Provider, error) {
	httpClient := makeHTTPClient(conf)
	parameters := map[string]string{
		"auth_token": conf.AuthToken,
	}

	switch conf.Provider {
	case providers.NameIPAPI:
		return providers.NewIPAPI(httpClient, parameters), nil
	case providers.NameIPInfo:
		return providers.NewIPInfo(httpClient, parameters), nil
	default:
		return nil, fmt.Errorf("unsupported provider name: %s", conf.Provider)
	}
}

func makeHTTPClient(conf *config.Config) geolib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: conf.HTTPTimeout.Duration,
		Jar:     jar,
	}

	userAgent := conf.UserAgent
	if userAgent == "" {
		userAgent = "nodes-subconverter/" + version
	}

	// The limiter guards a provider globally. A sleeper paces nodes
	// within a single run, concurrent API runs still share this budget.
	return geolib.NewHTTPClient(httpClient,
		userAgent,
		conf.Rate().RequestDelay,
		1)
}
