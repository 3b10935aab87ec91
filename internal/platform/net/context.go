// Package net holds request scoped values shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID is the id chi's RequestID middleware put on ctx, empty outside a request
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
