package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
)

// RecoverJSON turns a panic into the usual 500 error envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server aborts the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			phttp.Handle(func(*stdhttp.Request) phttp.Response {
				return phttp.Error(perr.New(perr.ErrorCodePanic, "internal error"))
			})(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}
