package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/denissa4/ads-manager/pkg/googleads"
	"github.com/google/uuid"
)

const (
	keywordReportSuffix = "_keyword_statistics.csv"
	ideasSuffix         = "_ads_campaign_ideas.txt"
)

// Store writes session artifacts to disk and produces download URLs.
type Store struct {
	filesDir   string
	uploadsDir string
	baseURL    string
}

// NewStore creates an artifact store, ensuring both directories exist.
func NewStore(filesDir, uploadsDir, baseURL string) (*Store, error) {
	for _, dir := range []string{filesDir, uploadsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create artifact directory %s: %w", dir, err)
		}
	}
	return &Store{
		filesDir:   filesDir,
		uploadsDir: uploadsDir,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

// UploadsDir returns the directory for uploaded attachments.
func (s *Store) UploadsDir() string {
	return s.uploadsDir
}

// FilesDir returns the directory for generated reports.
func (s *Store) FilesDir() string {
	return s.filesDir
}

// DownloadURL maps an artifact path to its public download URL.
func (s *Store) DownloadURL(path string) string {
	return s.baseURL + "/downloads/" + filepath.Base(path)
}

// WriteKeywordReport writes keyword ideas as a CSV report and returns
// the file path.
func (s *Store) WriteKeywordReport(ideas []googleads.KeywordIdea) (string, error) {
	path := filepath.Join(s.filesDir, shortID()+keywordReportSuffix)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create keyword report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Keyword",
		"Average Monthly Searches",
		"Competition",
		"Competition Index",
		"Low Top of Page Bid (micros)",
		"High Top of Page Bid (micros)",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}

	for _, idea := range ideas {
		record := []string{
			idea.Keyword,
			strconv.FormatInt(idea.AvgMonthlySearches, 10),
			idea.Competition,
			strconv.FormatInt(idea.CompetitionIndex, 10),
			strconv.FormatInt(idea.LowTopOfPageBidMicros, 10),
			strconv.FormatInt(idea.HighTopOfPageBidMicros, 10),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}
	return path, nil
}

// WriteIdeasReport writes generated campaign ideas as a text file and
// returns the file path. A leading "assistant:" role prefix from the
// model output is stripped.
func (s *Store) WriteIdeasReport(content string) (string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "assistant:")
	content = strings.TrimSpace(content)

	path := filepath.Join(s.filesDir, shortID()+ideasSuffix)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write ideas report: %w", err)
	}
	return path, nil
}

// shortID returns the first 6 characters of a fresh UUID, enough to
// keep artifact names unique per session without unwieldy filenames.
func shortID() string {
	return uuid.New().String()[:6]
}
