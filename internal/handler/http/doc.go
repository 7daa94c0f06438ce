// Package http implements the HTTP transport of the API server.
//
// Every request passes trace-id assignment, access logging, request timeout,
// CORS and the authentication gate before it reaches a route handler. Route
// handlers decode JSON bodies, call the service layer and map service errors
// to status codes in errors_mapper.go.
package http
