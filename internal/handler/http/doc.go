// Package http implements the REST surface of the bookshelf server.
//
// Routes are registered on a chi router in [Handler.Init]. Every request
// passes through panic recovery, trace id propagation, access logging and
// gzip handling; the HashSHA256 integrity check and the per-request timeout
// are added only when configured. Handlers translate service errors into
// status codes through a single table in errors_mapper.go.
package http
