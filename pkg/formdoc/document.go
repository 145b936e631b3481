package formdoc

import (
	"bytes"
	"errors"
)

// Encoding is the detected serialization of a document payload.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// DetectEncoding sniffs the payload serialization. JSON documents open with
// an object or array delimiter; anything else is treated as YAML, which is
// also the native format of the issue-form layout.
func DetectEncoding(raw []byte) Encoding {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return EncodingJSON
	}
	return EncodingYAML
}

// Document is a fetched form-document payload plus its origin and detected
// encoding. The parser trusts the encoding instead of re-guessing formats.
type Document struct {
	source   Source
	raw      []byte
	encoding Encoding
}

// NewDocument wraps a fetched payload, sniffing its encoding. The payload is
// copied so later mutation of raw cannot reach the document.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("formdoc: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("formdoc: document is empty")
	}

	return Document{
		source:   src,
		raw:      append([]byte(nil), raw...),
		encoding: DetectEncoding(raw),
	}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Encoding returns the serialization detected at wrap time.
func (d Document) Encoding() Encoding {
	return d.encoding
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
