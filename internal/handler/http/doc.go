// Package http implements the message endpoint of the background process.
//
// Client contexts POST one JSON message per request to /api/messages. The
// body is checked against its HMAC signature, decoded into a router command
// and dispatched. The answer is JSON, or 204 when there is nothing to say.
//
// Every request passes through panic recovery, trace id propagation and
// access logging before it reaches a handler.
package http
