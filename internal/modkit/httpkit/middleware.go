package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/middleware"
)

// StackOptions tune the shared API middleware
type StackOptions struct {
	// Origins allowed to call the API, the wizard frontend is served from elsewhere
	Origins []string
	// Slow marks requests at or above it as warnings in the access log
	Slow time.Duration
	// Timeout cancels a request context, a student record load is bounded by it
	Timeout time.Duration
	// MaxInFlight caps concurrent requests, 0 disables it
	MaxInFlight int
}

// StackFromConfig reads CORS_ORIGINS, SLOW, TIMEOUT and MAX_IN_FLIGHT
func StackFromConfig(c config.Conf) StackOptions {
	return StackOptions{
		Origins:     c.MayCSV("CORS_ORIGINS", []string{"*"}),
		Slow:        c.MayDuration("SLOW", 500*time.Millisecond),
		Timeout:     c.MayDuration("TIMEOUT", 30*time.Second),
		MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 0),
	}
}

// CommonStack is the middleware every API route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	mw := []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext(),

		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		mw = append(mw, middleware.Throttle(o.MaxInFlight))
	}
	if o.Timeout > 0 {
		mw = append(mw, middleware.Timeout(o.Timeout))
	}
	return mw
}
