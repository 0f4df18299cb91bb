package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

type apiHandler struct {
	annotator *geolib.Annotator
	version   string
}

// NewHandler builds a ready to use API router. timeBudget caps a whole
// request lifetime: when it is exhausted, a running enrichment is
// cancelled and a client gets an error, not a partial result.
func NewHandler(annotator *geolib.Annotator,
	version string,
	timeBudget time.Duration) http.Handler {
	if timeBudget <= 0 {
		timeBudget = geolib.DefaultTimeBudget
	}

	handler := apiHandler{
		annotator: annotator,
		version:   version,
	}

	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(timeBudget))
	router.Use(middleware.SetHeader("Content-Type", "application/json"))

	router.Post("/", handler.handleAnnotate)
	router.Get("/info", handler.handleInfo)
	router.Get("/healthz", handler.handleHealth)

	return router
}

func (h apiHandler) handleHealth(w http.ResponseWriter, req *http.Request) {
	h.encodeJSON(w, map[string]string{"result": "ok"})
}

func (h apiHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h apiHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.WriteHeader(e.StatusCode())
	h.encodeJSON(w, e)
}
