// Package export derives machine-readable contracts from a form schema.
//
// The only exporter today targets OpenAPI: it turns the interactive fields of
// a form.Schema into an openapi3 object schema describing the JSON payload a
// submission endpoint would accept. Markdown notes carry no submission data
// and never appear in the contract.
package export
