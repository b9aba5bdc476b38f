// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// At the moment it only exposes `Excerpt` which shortens payloads for diagnostics.
package conv
