// Package web implements the HTML frontend service.
//
// Pages are rendered from embedded html/template files. The users and items
// pages read their data from the API server through an
// [adapter.BackendAdapter]; when the API cannot be reached the failure is
// logged and the page is rendered with an empty list.
package web
