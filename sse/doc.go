// Package sse decodes a Server-Sent Events byte stream into discrete frames.
//
// The decoder is incremental: bytes may arrive in chunks split at arbitrary
// boundaries (mid-line, mid-field) and the produced frame sequence is the same
// as if the whole stream had been fed at once.
//
// Framing follows the bridge wire convention rather than the full WHATWG model:
// every "data:" line yields a frame carrying the pending "event:" type, and the
// pending type is reset after each data line and on any other line.
package sse
