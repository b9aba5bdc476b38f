// Package stdio implements the local side of the bridge: newline delimited
// JSON-RPC read from standard input and written to standard output.
//
// Every input line is dispatched in arrival order and its delivery awaited
// before the next line is read. A failure never stops the dispatcher; it is
// reported back to the caller as a JSON-RPC error response.
package stdio
