package formdoc

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceKind selects the loader's fetch strategy.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where a form document lives. Location is a file path, an
// fs.FS entry name, or an http(s) URL depending on the kind.
type Source interface {
	Kind() SourceKind
	Location() string
}

// All sources share one representation; the kind alone decides how the
// location string is interpreted.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

func (s source) String() string { return string(s.kind) + ":" + s.location }

// SourceFromFile returns a Source pointing to a form document on disk.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source naming an entry inside the loader's fs.FS,
// typically an embedded form document.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source for a form document served over HTTP, the
// usual case when forms live alongside an issue tracker. It panics on
// malformed URLs or non-http(s) schemes to surface configuration mistakes
// early.
func SourceFromURL(raw string) Source {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		panic(fmt.Sprintf("formdoc: invalid URL %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		panic(fmt.Sprintf("formdoc: unsupported URL scheme %q", u.Scheme))
	}
	return source{kind: SourceKindURL, location: u.String()}
}
