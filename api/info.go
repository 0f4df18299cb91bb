package api

import (
	"net/http"
)

func (h apiHandler) handleInfo(w http.ResponseWriter, req *http.Request) {
	summary := h.annotator.Summarize(0)

	response := infoResponseStruct{}
	response.Result.Version = h.version
	response.Result.Provider = h.annotator.Stats().Name
	response.Result.RequestDelay = summary.RequestDelay.String()
	response.Result.PerMinute = summary.PerMinute
	response.Result.TimeBudget = summary.TimeBudget.String()
	response.Result.Stats = h.annotator.Stats()

	h.encodeJSON(w, response)
}
