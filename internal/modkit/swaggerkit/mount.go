// Package swaggerkit serves the generated OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under /api/docs/ and the document read by doc at /api/docs/doc.json
func Mount(r phttp.Router, enabled bool, doc func() string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(doc, "/api/v1"))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
