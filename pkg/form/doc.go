// Package form models declarative issue-report form schemas: an ordered set
// of field definitions loaded once into an immutable Schema that validators
// and intake surfaces share.
package form
