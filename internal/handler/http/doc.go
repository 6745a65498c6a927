// Package http implements the HTTP transport layer of site-vault.
//
// It exposes route wiring, form handlers and middleware. Form posts are
// translated into service requests, successful flows answer with a 303
// redirect and failed flows with the JSON result record. Request tracing,
// access logging and session resolution are handled here before requests
// are delegated to the service layer.
package http
