// Package launcher implements the locate-and-launch sequence for tsserver.
//
// The sequence is linear and one-shot:
//
//	install directory resolution → module path configuration → handoff
//
// The launcher derives its install directory from its own invocation path,
// contributes five module search entries relative to that directory (ahead
// of any pre-existing NODE_PATH value), prefers a sibling node binary over
// the system one, and finally replaces its own process image with the chosen
// interpreter running the tsserver entry point, forwarding all original
// arguments verbatim.
//
// Error handling is deliberately delegated: no existence checks beyond the
// local interpreter's executable bit, no retries, no cleanup. A failed
// handoff surfaces the host primitive's native error, mapped onto the shell
// exec conventions (127 not found, 126 not executable).
package launcher
