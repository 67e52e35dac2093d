package artifact

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/denissa4/ads-manager/pkg/googleads"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "files"), filepath.Join(dir, "uploads"), "http://localhost:8080/")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestStore_WriteKeywordReport(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WriteKeywordReport([]googleads.KeywordIdea{
		{
			Keyword:                "running shoes",
			AvgMonthlySearches:     12000,
			Competition:            "HIGH",
			CompetitionIndex:       87,
			LowTopOfPageBidMicros:  250000,
			HighTopOfPageBidMicros: 1200000,
		},
	})
	if err != nil {
		t.Fatalf("WriteKeywordReport failed: %v", err)
	}

	if !strings.HasSuffix(path, "_keyword_statistics.csv") {
		t.Errorf("unexpected report name: %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse report CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Keyword" {
		t.Errorf("unexpected header: %v", records[0])
	}
	want := []string{"running shoes", "12000", "HIGH", "87", "250000", "1200000"}
	for i, col := range want {
		if records[1][i] != col {
			t.Errorf("column %d: expected %q, got %q", i, col, records[1][i])
		}
	}
}

func TestStore_WriteIdeasReportStripsRolePrefix(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WriteIdeasReport("assistant: Campaign Idea 1\nName: Summer Sale")
	if err != nil {
		t.Fatalf("WriteIdeasReport failed: %v", err)
	}
	if !strings.HasSuffix(path, "_ads_campaign_ideas.txt") {
		t.Errorf("unexpected ideas file name: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(string(data), "assistant:") {
		t.Error("expected role prefix to be stripped")
	}
	if !strings.Contains(string(data), "Campaign Idea 1") {
		t.Errorf("unexpected ideas content: %q", string(data))
	}
}

func TestStore_DownloadURL(t *testing.T) {
	store := newTestStore(t)

	got := store.DownloadURL("/var/files/abc123_keyword_statistics.csv")
	want := "http://localhost:8080/downloads/abc123_keyword_statistics.csv"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain text read verbatim",
			path: write("notes.txt", "brand guidelines"),
			want: "brand guidelines",
		},
		{
			name: "csv read verbatim",
			path: write("data.csv", "a,b\n1,2"),
			want: "a,b\n1,2",
		},
		{
			name: "html tags stripped",
			path: write("page.html", "<html><head><style>p{}</style></head><body><p>Great <b>shoes</b></p></body></html>"),
			want: "Great shoes",
		},
		{
			name: "unsupported type placeholder",
			path: write("photo.png", "binary"),
			want: "[Unsupported file type: photo.png]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.path)
			if err != nil {
				t.Fatalf("ExtractText failed: %v", err)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"## Big Sale", "Big Sale"},
		{"$$$ Cheap Shoes $$$", "Cheap Shoes"},
		{"Save $5 today", "Save $5 today"},
		{"Plain headline", "Plain headline"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
