// Package cli is the tasktracker command-line client built on cobra.
//
// Every command is a single gRPC round trip (plus a transparent token
// refresh when needed). Login tokens live in a session file between runs;
// tokens rotated during a command are written back to it. The shell command
// runs the same commands in an interactive loop.
package cli
