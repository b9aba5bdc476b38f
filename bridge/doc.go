// Package bridge wires the stdio <-> SSE bridge together and drives its lifecycle.
//
// The bridge acts as a local proxy between a process speaking newline delimited
// JSON-RPC on stdin/stdout and a remote server exposing an SSE session: messages
// read from stdin are POSTed to the session endpoint, and messages pushed over
// the event stream are written to stdout. Diagnostics go to stderr only.
//
// The service moves through Starting, Connecting, Active, Closing and
// Terminated. Failing to establish the session is the only fatal error; input
// EOF, a termination signal or the remote closing the stream all shut the
// bridge down gracefully.
package bridge
