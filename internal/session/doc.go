// Package session provides the collaborators the UI layer needs around the
// core pipeline: a store that keys prepared caches by opaque session
// tokens, and a debouncer that coalesces rapid slider movements into one
// render per pause.
package session
