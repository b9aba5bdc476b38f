// Package ssebridge connects a line-delimited JSON-RPC stdio client to a remote
// server speaking the HTTP+SSE transport.
//
// The bridge opens a long-lived event stream, waits for the server to announce a
// session through an "endpoint" event, then forwards every stdin line as a POST
// tagged with the session id and writes every "message" event back to stdout.
//
// The executable lives in bridge/sse-bridge:
//
//	sse-bridge http://localhost:3080/sse
//
// See the bridge package for embedding the same loop in another program.
package ssebridge
