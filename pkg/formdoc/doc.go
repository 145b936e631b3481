// Package formdoc parses declarative issue-report form documents (YAML or
// JSON) into loadable form schemas. Top-level keys other than the field body
// are preserved verbatim for the external issue tracker; the package never
// interprets them.
package formdoc
