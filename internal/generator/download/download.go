package download

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/models"
)

const (
	retryWaitMin = 100 * time.Millisecond
	retryWaitMax = 5 * time.Second
	maxErrorBody = 1 << 10
	defaultExt   = ".jpg"
)

// Downloader type saves images fetched by URL to file system.
type Downloader struct {
	fs      afero.Fs
	config  *models.DownloadConfig
	client  *retryablehttp.Client
	newName func() string
}

// NewDownloader function creates Downloader object.
func NewDownloader(fs afero.Fs, config *models.DownloadConfig) *Downloader {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = config.RetryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.HTTPClient.Timeout = config.Timeout

	return &Downloader{
		fs:      fs,
		config:  config,
		client:  client,
		newName: uuid.NewString,
	}
}

// Download fetches url and saves response body into dir as "<uuid><ext>".
// Dir defaults to the configured one. Returns path of the saved file.
func (d *Downloader) Download(ctx context.Context, rawURL, dir string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", errors.Errorf("invalid url: %q", rawURL)
	}

	if dir == "" {
		dir = d.config.Dir
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.New(err.Error())
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", errors.WithMessagef(errors.New(err.Error()), "failed to download %q", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return "", errors.Errorf(
			"failed to download %q: received non-OK status code %s: %s",
			rawURL, resp.Status, strings.TrimSpace(string(body)),
		)
	}

	if err = d.fs.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.New(err.Error())
	}

	filePath := filepath.Join(dir, d.newName()+extension(resp.Header.Get("Content-Type"), parsedURL.Path))

	file, err := d.fs.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		return "", errors.New(err.Error())
	}

	if _, err = io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		_ = d.fs.Remove(filePath)

		return "", errors.WithMessagef(errors.New(err.Error()), "failed to save %q", filePath)
	}

	if err = file.Close(); err != nil {
		return "", errors.New(err.Error())
	}

	return filePath, nil
}

// extension picks file extension by content type, then by url path.
func extension(contentType, urlPath string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "image/jpeg":
			return ".jpg"
		case "image/png":
			return ".png"
		case "image/gif":
			return ".gif"
		case "image/webp":
			return ".webp"
		case "image/svg+xml":
			return ".svg"
		}
	}

	if ext := path.Ext(urlPath); ext != "" && len(ext) <= 5 { //nolint:mnd
		return strings.ToLower(ext)
	}

	return defaultExt
}
