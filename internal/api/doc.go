package api

// Package api is the HTTP client for the academic records REST backend. Each
// entity lives under its own path with the usual verbs: GET lists the whole
// collection, POST creates, PUT /{id} updates and DELETE /{id} removes. Non-2xx
// responses carry a text body that is surfaced verbatim in error messages.
