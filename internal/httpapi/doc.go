// Package httpapi exposes the lending engine over HTTP. It is plumbing:
// routing, request decoding and shape validation, and the mapping of typed
// domain errors onto status codes. All business rules live behind the
// Engine interface.
package httpapi
