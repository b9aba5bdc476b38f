// Command sse-bridge bridges newline delimited JSON-RPC on stdin/stdout to a
// remote SSE session.
//
//	sse-bridge [--debug] [--endpoint-path] [--timeout 30s] [url]
//
// The url defaults to $MCP_SSE_URL, then http://localhost:3080/sse. The process
// exits with status 1 when the session cannot be established and 0 otherwise.
package main
