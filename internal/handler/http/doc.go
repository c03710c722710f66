// Package http implements the HTTP transport layer of go-places.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, request tracing, access logging
// and authentication are handled in this package before requests are
// delegated to the service layer. Every failure is written by one responder
// as {"message": ...} with the status taken from errorStatusMap.
package http
