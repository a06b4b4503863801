// Package terminal holds the small amount of direct terminal control the stream
// display needs: ANSI clear sequences, TTY and color capability detection, and
// emergency restoration after a crash.
//
// Full-screen cell output goes through tcell in package render; this package
// only deals with plain byte streams.
package terminal
