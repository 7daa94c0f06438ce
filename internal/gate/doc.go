// Package gate decides whether an inbound API request may reach the route
// handlers.
//
// A [Pipeline] runs an ordered list of [Stage] functions against the request
// and one configuration snapshot. Each stage either passes the request on to
// the next stage, forwards it to the handlers, or rejects it with a reason.
// Reasons are meant for server-side logs only; every rejection is answered
// with the same 401 response.
package gate
