// Package controller holds HTTP middleware and auxiliary handlers shared by
// the API server: request-scoped logging, CORS, and pprof.
package controller
