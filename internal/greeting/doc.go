// Package greeting owns the fixed console transcript printed by hello.
//
// The transcript is two lines:
//
//	Hello!
//	Welcome to, Rust!
//
// Write emits it as three ordered writes (the first line, a bare newline,
// then the second line with its newline) so a failing writer is reported
// at the exact step that broke. Output never depends on the clock, the
// environment, or any input.
package greeting
