// Package media downloads remote images referenced by converted content and
// rewrites the references to local paths.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// imagePattern matches a markdown image reference with an absolute HTTPS URL.
var imagePattern = regexp.MustCompile(`!\[[^\]]*\]\((https://[^)\s]+)\)`)

// Manifest records every downloaded file so later runs can prune orphans.
// A nil manifest disables recording.
type Manifest interface {
	Record(ctx context.Context, sourceURL, filename string) error
}

// Failure is one image reference that could not be localized. The reference
// is left pointing at its remote URL.
type Failure struct {
	URL string
	Err error
}

// Result is the outcome of one localization pass.
type Result struct {
	Text     string
	Images   map[string]string
	Failures []Failure
}

// Config holds localizer configuration.
type Config struct {
	ImagesDir    string
	PublicPrefix string
	Timeout      time.Duration

	// DownloadInterval is the flat minimum delay between downloads.
	DownloadInterval time.Duration
}

// Localizer downloads images sequentially and rewrites references in place.
type Localizer struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	imagesDir    string
	publicPrefix string
	manifest     Manifest
	logger       *slog.Logger
}

// New creates a Localizer, ensuring the images directory exists.
func New(cfg Config, manifest Manifest, logger *slog.Logger) (*Localizer, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	return &Localizer{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:      rate.NewLimiter(rate.Every(cfg.DownloadInterval), 1),
		imagesDir:    cfg.ImagesDir,
		publicPrefix: cfg.PublicPrefix,
		manifest:     manifest,
		logger:       logger.With("component", "media"),
	}, nil
}

// Localize scans markup for remote image references, downloads each in order
// of first appearance as {prefix}-{index}{ext}, and rewrites successful ones
// to their local public path. A failed download leaves that one reference
// unmodified; the index is only consumed by successes.
func (l *Localizer) Localize(ctx context.Context, markup, prefix string) Result {
	result := Result{
		Text:   markup,
		Images: map[string]string{},
	}

	index := 0
	for _, match := range imagePattern.FindAllStringSubmatch(markup, -1) {
		remoteURL := match[1]
		if _, done := result.Images[remoteURL]; done {
			continue
		}

		filename := fmt.Sprintf("%s-%d%s", prefix, index, extensionOf(remoteURL))

		if err := l.download(ctx, remoteURL, filename); err != nil {
			l.logger.Error("failed to download image", "url", remoteURL, "error", err)
			result.Failures = append(result.Failures, Failure{URL: remoteURL, Err: err})
			continue
		}

		localPath := l.publicPrefix + "/" + filename
		result.Images[remoteURL] = localPath
		result.Text = strings.ReplaceAll(result.Text, remoteURL, localPath)
		index++
	}

	return result
}

// LocalizeHero downloads a hero image directly, independent of the generic
// pass, under the fixed {slug}-hero{ext} name.
func (l *Localizer) LocalizeHero(ctx context.Context, remoteURL, slug string) (string, error) {
	filename := slug + "-hero" + extensionOf(remoteURL)
	if err := l.download(ctx, remoteURL, filename); err != nil {
		return "", err
	}
	return l.publicPrefix + "/" + filename, nil
}

// Remove deletes a previously downloaded file from the images directory.
// A file already gone is not an error.
func (l *Localizer) Remove(filename string) error {
	err := os.Remove(filepath.Join(l.imagesDir, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func (l *Localizer) download(ctx context.Context, remoteURL, filename string) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	filePath := filepath.Join(l.imagesDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		_ = os.Remove(filePath)
		return fmt.Errorf("write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	if l.manifest != nil {
		if err := l.manifest.Record(ctx, remoteURL, filename); err != nil {
			l.logger.Warn("failed to record image in manifest", "filename", filename, "error", err)
		}
	}

	l.logger.Debug("downloaded image", "url", remoteURL, "filename", filename)
	return nil
}

func extensionOf(remoteURL string) string {
	parsed, err := url.Parse(remoteURL)
	if err != nil {
		return ".png"
	}
	ext := path.Ext(parsed.Path)
	if ext == "" {
		return ".png"
	}
	return ext
}
