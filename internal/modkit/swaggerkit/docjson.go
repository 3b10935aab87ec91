package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
)

const envelopeRef = "#/components/schemas/httpkit.Envelope"

// serveDocJSON parses the generated document on each request and fills in what
// swag cannot know: the versioned server url and the error replies every route shares
func serveDocJSON(doc func() string, server string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(doc()), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("openapi document does not parse")
			http.Error(w, "openapi document does not parse", http.StatusInternalServerError)
			return
		}
		prepare(spec, server)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// prepare pins the document to OpenAPI 3.0.3, which the bundled UI renders,
// and adds default 400 and 500 envelopes to operations that do not declare them
func prepare(spec map[string]any, server string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": server}}
	}

	defaults := map[string]any{
		"400": errorReply("Bad Request", perr.Validationf("graduation", "graduation is required")),
		"500": errorReply("Internal Server Error", perr.New(perr.ErrorCodePanic, "internal error")),
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			for status, reply := range defaults {
				if _, ok := resps[status]; !ok {
					resps[status] = reply
				}
			}
		}
	}
}

// errorReply documents the envelope written for err
func errorReply(status string, err error) map[string]any {
	wire := perr.WireFrom(err)
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": envelopeRef},
				"example": map[string]any{
					"status_code": perr.HTTPStatus(err),
					"status":      status,
					"code":        wire.Code,
					"field":       wire.Field,
					"error":       wire.Message,
				},
			},
		},
	}
}
