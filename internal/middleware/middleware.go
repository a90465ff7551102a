// Package middleware wires the HTTP-level cross-cutting concerns:
// request IDs, request-scoped loggers, access logging, CORS, panic
// recovery, New Relic tracing, and the global error handler that maps
// every failure into the errs.HTTPError response schema.
package middleware
