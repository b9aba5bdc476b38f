// Package session owns the lifecycle of the remote SSE session.
//
// A Manager opens the event stream with a client generated placeholder id,
// waits for the server to announce the session endpoint, and records the
// server assigned id on a Session handle. The handle is shared by reference
// with senders; it is invalidated exactly once when the stream ends.
//
// There is no reconnect: a lost session is terminal for the bridge process.
package session
