// Package intake collects a form submission interactively from a terminal.
//
// A Collector walks the schema fields in order: markdown notes are printed as
// informational text, short-text fields prompt a single-line input, and
// long-text fields open a multi-line editor. Required and length rules are
// enforced per field with a bounded re-prompt loop, and the finished value set
// is passed through the submission validator before being returned.
//
// The terminal interaction sits behind a PromptDriver so collection logic can
// be tested with scripted drivers and callers can swap implementations.
package intake
