// Package editor implements the parameter editor controller. An Editor is
// built once from a schema and an initial model, after which it is Ready for
// the rest of its lifetime. Each HandleEdit call is one state transition and
// produces exactly one synchronous push to the registered OnModelChange
// subscriber; GetModel reads the same state on demand. Rendering
// collaborators consume Fields and report user input back through
// HandleEdit, while hosts that only need the two capabilities {read model,
// submit edit} should hold a Handle instead of the Editor itself.
//
// Editors are not safe for concurrent use. Hosts that share one across
// goroutines must serialize access.
package editor
