package formdoc_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-issueform/pkg/formdoc"
)

func TestLoader_File(t *testing.T) {
	loader := formdoc.NewLoader()

	doc, err := loader.Load(context.Background(), formdoc.SourceFromFile(filepath.Join("testdata", "bug_report.yml")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatalf("expected payload bytes")
	}
	if doc.Source().Kind() != formdoc.SourceKindFile {
		t.Fatalf("source kind mismatch: %s", doc.Source().Kind())
	}
	if doc.Encoding() != formdoc.EncodingYAML {
		t.Fatalf("encoding mismatch: %s", doc.Encoding())
	}
}

func TestLoader_FS(t *testing.T) {
	loader := formdoc.NewLoader(formdoc.WithFS(os.DirFS("testdata")))

	parsed, err := loader.LoadForm(context.Background(), formdoc.SourceFromFS("bug_report.yml"))
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if parsed.Schema.ID() != "bug-report" {
		t.Fatalf("schema id mismatch: %q", parsed.Schema.ID())
	}
}

func TestLoader_HTTP(t *testing.T) {
	payload, err := os.ReadFile(filepath.Join("testdata", "bug_report.yml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	loader := formdoc.NewLoader(formdoc.WithHTTPClient(server.Client()))
	parsed, err := loader.LoadForm(context.Background(), formdoc.SourceFromURL(server.URL+"/bug_report.yml"))
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if parsed.Name != "🐛 Bug Report" {
		t.Fatalf("name mismatch: %q", parsed.Name)
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	loader := formdoc.NewLoader()

	_, err := loader.Load(context.Background(), formdoc.SourceFromURL("http://localhost/form.yml"))
	if err == nil {
		t.Fatalf("expected http support disabled error")
	}
	if !strings.HasPrefix(err.Error(), "formdoc loader:") {
		t.Fatalf("fetch error leaked without loader prefix: %v", err)
	}
}

func TestLoader_MaxDocumentSize(t *testing.T) {
	loader := formdoc.NewLoader(formdoc.WithMaxDocumentSize(16))

	_, err := loader.Load(context.Background(), formdoc.SourceFromFile(filepath.Join("testdata", "bug_report.yml")))
	if err == nil {
		t.Fatalf("expected size ceiling error")
	}
	if !strings.Contains(err.Error(), "exceeds 16 bytes") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	loader := formdoc.NewLoader()

	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected nil source error")
	}
}

func TestLoader_FSMissingFile(t *testing.T) {
	loader := formdoc.NewLoader(formdoc.WithFS(os.DirFS("testdata")))

	if _, err := loader.Load(context.Background(), formdoc.SourceFromFS("missing.yml")); err == nil {
		t.Fatalf("expected read error")
	}
}
