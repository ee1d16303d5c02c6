// Package raworc is a typed client for the Raworc session-orchestration REST
// API.
//
// Every operation funnels through one request primitive that attaches JSON
// and bearer headers, maps non-2xx responses into raworcerrs types, and
// recovers from a single 401 by logging in again with the stored
// credentials and replaying the request once.
//
// Space-scoped operations accept an empty space to mean "not given"; the
// client then falls back to the configured default space and finally to the
// literal "default".
package raworc
