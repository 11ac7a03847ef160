// Package api implements the typed HTTP client for the shortlink service.
//
// # Overview
//
// The package provides:
//  1. A Client bound to a base URL that issues JSON requests with a cookie
//     jar, so the session cookie set on login rides on every subsequent
//     call.
//  2. A single classification boundary that turns every failure mode into
//     one typed *Error: transport failures, HTTP >= 500, envelopes with
//     success=false, and unparseable bodies. Callers never observe any
//     other error shape.
//  3. Endpoint bindings for the REST contract: Register, Login (which
//     normalizes the server's userId field to the canonical id), Logout,
//     ListLinks, CreateLink, DeleteLink.
//
// # Error Handling
//
// Match errors with errors.As against *Error and inspect Kind/Status, or
// use the IsUnauthorized helper. The HTTP status code is not authoritative
// for application-level failure; the envelope's success flag is.
//
// Concurrency & Contexts
//
// Client is stateless apart from the cookie jar and is safe for concurrent
// use. All operations accept context.Context and honor cancellation.
package api
