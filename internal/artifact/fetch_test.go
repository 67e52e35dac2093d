package artifact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestFetchURL_WrapsContentWithSource(t *testing.T) {
	store := newTestStore(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Premium running shoes</p></body></html>"))
	}))
	defer server.Close()

	path, err := store.FetchURL(context.Background(), server.URL+"/about")
	if err != nil {
		t.Fatalf("FetchURL failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Source: "+server.URL+"/about\n") {
		t.Errorf("expected provenance header, got %q", string(data)[:40])
	}
	if !strings.Contains(string(data), "Premium running shoes") {
		t.Errorf("expected page body after header: %q", string(data))
	}

	// The source URL survives text extraction of the saved page.
	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, server.URL+"/about") {
		t.Errorf("source URL lost during extraction: %q", text)
	}
}

func TestFetchURL_RejectsNonHTTPSchemes(t *testing.T) {
	store := newTestStore(t)

	for _, raw := range []string{"ftp://example.com/file", "file:///etc/passwd", "not a url"} {
		if _, err := store.FetchURL(context.Background(), raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestSaveContent(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveContent("notes.txt", []byte("brand voice: playful"))
	if err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if !strings.HasSuffix(path, "_notes.txt") {
		t.Errorf("unexpected saved name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "brand voice: playful" {
		t.Errorf("unexpected content: %q", string(data))
	}
}
