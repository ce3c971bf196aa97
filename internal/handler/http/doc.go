// Package http implements the HTTP transport layer of the catalog API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and CORS
// are handled in this package before requests are delegated to the service
// layer. The per-endpoint status codes and message strings reproduce the
// legacy API contract, including the branches that answer 200 with a
// descriptive message instead of a 4xx.
package http
