package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"
)

var handleAnnotateJSONSchema = func() *jsonschema.Schema {
	rv := &jsonschema.Schema{}
	data := `{
  "type": "object",
  "required": ["nodes"],
  "additionalProperties": false,
  "properties": {
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["server"],
        "additionalProperties": false,
        "properties": {
          "name": {
            "type": "string"
          },
          "server": {
            "type": "string",
            "minLength": 1
          }
        }
      }
    }
  }
}`

	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

func (h apiHandler) handleAnnotate(w http.ResponseWriter, req *http.Request) {
	if !strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		h.sendError(w, nil, "Incorrect content type", http.StatusUnsupportedMediaType)

		return
	}

	bodyBytes, err := io.ReadAll(req.Body)

	req.Body.Close()

	if err != nil {
		h.sendError(w, err, "Cannot read request body", http.StatusInternalServerError)

		return
	}

	if errs, err := handleAnnotateJSONSchema.ValidateBytes(req.Context(), bodyBytes); err != nil {
		h.sendError(w, err, "Cannot validate request body", http.StatusInternalServerError)

		return
	} else if len(errs) > 0 {
		h.sendError(w, errs[0], "Invalid request body", http.StatusBadRequest)

		return
	}

	request := annotateRequestStruct{}
	if err := json.Unmarshal(bodyBytes, &request); err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	annotated, err := h.annotator.AnnotateAll(req.Context(), request.ToNodes())
	if err != nil {
		h.sendError(w, err, "Run has been terminated", http.StatusServiceUnavailable)

		return
	}

	h.encodeJSON(w, newAnnotateResponse(annotated))
}
