// Package httpkit is the routing surface modules see
// modules import it instead of the platform http package
package httpkit

import (
	"net/http"

	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
)

type (
	// Envelope is the reply wrapper, named in swagger annotations
	Envelope = phttp.Envelope

	// Response lets a handler pick its status
	Response = phttp.Response

	// Router is the routing seam
	Router = phttp.Router
)

// Param returns a trimmed route parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// QueryInt reads an integer query parameter, def when missing or malformed
func QueryInt(r *http.Request, name string, def int) int { return phttp.QueryInt(r, name, def) }

// Created is a 201 carrying data
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a bodyless 204
func NoContent() Response { return phttp.NoContent() }
