package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const maxFetchBytes = 10 << 20 // 10 MiB per attachment or URL

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// SaveContent writes inline attachment content into the uploads
// directory and returns the saved path.
func (s *Store) SaveContent(name string, data []byte) (string, error) {
	if name == "" {
		name = "attachment.txt"
	}
	if len(data) > maxFetchBytes {
		data = data[:maxFetchBytes]
	}

	dst := filepath.Join(s.uploadsDir, shortID()+"_"+filepath.Base(name))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("save attachment %s: %w", name, err)
	}
	return dst, nil
}

// FetchURL downloads a reference URL into the uploads directory and
// returns the saved path. The file starts with a Source line so later
// readers can trace the content back to its origin.
func (s *Store) FetchURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	name := path.Base(parsed.Path)
	if name == "" || name == "/" || name == "." {
		name = "page.html"
	}
	if filepath.Ext(name) == "" {
		name += ".html"
	}
	dst := filepath.Join(s.uploadsDir, shortID()+"_"+name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create fetched file: %w", err)
	}
	defer out.Close()

	if _, err := fmt.Fprintf(out, "Source: %s\n\n", rawURL); err != nil {
		return "", fmt.Errorf("write provenance header: %w", err)
	}
	if _, err := io.Copy(out, io.LimitReader(resp.Body, maxFetchBytes)); err != nil {
		return "", fmt.Errorf("save fetched content: %w", err)
	}
	return dst, nil
}
