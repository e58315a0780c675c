// Package picgo re-hosts article images on a PicGo-compatible image host.
// It implements clipmark.Uploader with a bounded worker pool, per-image
// upload retry, an overall batch deadline, and identity fallback for every
// failed image.
package picgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/mwalczak/clipmark"
	"golang.org/x/sync/errgroup"
)

// Pipeline defaults. The gate of 2 keeps the image host happy; the batch
// deadline bounds how long a clip can wait on its images.
const (
	DefaultConcurrency    = 2
	DefaultUploadAttempts = 3
	DefaultRetryPause     = 2 * time.Second
	DefaultBatchTimeout   = 120 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Ensure Uploader implements clipmark.Uploader at compile time.
var _ clipmark.Uploader = (*Uploader)(nil)

// Uploader downloads images and uploads them to a PicGo server.
type Uploader struct {
	client       *http.Client
	serverURL    string
	uploadPath   string
	concurrency  int
	attempts     int
	retryPause   time.Duration
	batchTimeout time.Duration
	limiter      clipmark.HostLimiter
	logger       *slog.Logger
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithHTTPClient sets the HTTP client used for downloads and uploads.
func WithHTTPClient(client *http.Client) Option {
	return func(u *Uploader) { u.client = client }
}

// WithConcurrency sets the number of simultaneously in-flight image jobs.
func WithConcurrency(n int) Option {
	return func(u *Uploader) { u.concurrency = n }
}

// WithUploadAttempts sets the total upload attempts per image.
func WithUploadAttempts(n int) Option {
	return func(u *Uploader) { u.attempts = n }
}

// WithRetryPause sets the pause between upload attempts.
// Useful for testing without waiting for real delays.
func WithRetryPause(d time.Duration) Option {
	return func(u *Uploader) { u.retryPause = d }
}

// WithBatchTimeout sets the overall deadline for one image batch.
func WithBatchTimeout(d time.Duration) Option {
	return func(u *Uploader) { u.batchTimeout = d }
}

// WithHostLimiter rate-limits downloads per source host.
func WithHostLimiter(limiter clipmark.HostLimiter) Option {
	return func(u *Uploader) { u.limiter = limiter }
}

// WithLogger sets the logger for per-image failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Uploader) { u.logger = logger }
}

// NewUploader creates an Uploader targeting the given PicGo server URL and
// upload path (e.g. "http://127.0.0.1:36677" and "/upload").
func NewUploader(serverURL, uploadPath string, opts ...Option) *Uploader {
	u := &Uploader{
		serverURL:    strings.TrimRight(serverURL, "/"),
		uploadPath:   uploadPath,
		concurrency:  DefaultConcurrency,
		attempts:     DefaultUploadAttempts,
		retryPause:   DefaultRetryPause,
		batchTimeout: DefaultBatchTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.client == nil {
		u.client = &http.Client{Timeout: DefaultRequestTimeout}
	}
	return u
}

// UploadImages processes the batch under the admission gate and the batch
// deadline. Every input reference gets exactly one mapping entry; failed or
// cancelled jobs resolve to their original URL.
func (u *Uploader) UploadImages(ctx context.Context, images []clipmark.ImageRef) (clipmark.URLMapping, error) {
	mapping := make(clipmark.URLMapping, len(images))
	if len(images) == 0 {
		return mapping, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.batchTimeout)
	defer cancel()

	resolved := make([]string, len(images))

	g := &errgroup.Group{}
	g.SetLimit(u.concurrency)
	for i, img := range images {
		g.Go(func() error {
			newURL, err := u.processImage(ctx, img)
			if err != nil {
				u.logger.Debug("image re-host failed, keeping original URL",
					"url", img.URL,
					"err", err,
				)
				resolved[i] = img.URL
				return nil
			}
			resolved[i] = newURL
			return nil
		})
	}
	// Workers never return errors; failures degrade to identity.
	_ = g.Wait()

	for i, img := range images {
		mapping[img.URL] = resolved[i]
	}
	return mapping, nil
}

// processImage downloads one image and uploads it to the image host.
func (u *Uploader) processImage(ctx context.Context, img clipmark.ImageRef) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if u.limiter != nil {
		if host := urlHost(img.URL); host != "" {
			if err := u.limiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
	}

	data, err := u.download(ctx, img.URL)
	if err != nil {
		return "", err
	}

	return u.upload(ctx, data, uploadFilename(img))
}

// download fetches the image bytes, rejecting non-2xx responses and
// non-image payloads.
func (u *Uploader) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clipmark.Errorf(clipmark.EUNAVAILABLE, "image download HTTP %d for %s", resp.StatusCode, imageURL)
	}
	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, clipmark.Errorf(clipmark.EINVALID, "non-image content type %q for %s", contentType, imageURL)
	}

	return io.ReadAll(resp.Body)
}

// upload posts the image to the host, retrying on timeout or a bad
// response with a fixed pause between attempts.
func (u *Uploader) upload(ctx context.Context, data []byte, filename string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < u.attempts; attempt++ {
		newURL, err := u.uploadOnce(ctx, data, filename)
		if err == nil {
			return newURL, nil
		}
		lastErr = err

		if attempt >= u.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(u.retryPause):
		}
	}
	return "", lastErr
}

// picgoResponse is the image host's JSON response shape.
type picgoResponse struct {
	Success bool     `json:"success"`
	Result  []string `json:"result"`
	Msg     string   `json:"msg"`
}

func (u *Uploader) uploadOnce(ctx context.Context, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.serverURL+u.uploadPath, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", clipmark.Errorf(clipmark.EUNAVAILABLE, "image upload HTTP %d", resp.StatusCode)
	}

	var result picgoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", clipmark.Errorf(clipmark.EINTERNAL, "malformed image host response: %v", err)
	}
	if !result.Success {
		return "", clipmark.Errorf(clipmark.EUNAVAILABLE, "image upload rejected: %s", result.Msg)
	}
	if len(result.Result) == 0 {
		return "", clipmark.Errorf(clipmark.EINTERNAL, "image upload succeeded but returned no URL")
	}

	return result.Result[0], nil
}

// uploadFilename derives the upload filename from the URL's path segment,
// prefixed by alt text when present.
func uploadFilename(img clipmark.ImageRef) string {
	name := "image.jpg"
	if u, err := url.Parse(img.URL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			name = base
		}
	}
	if img.Alt != "" {
		name = img.Alt + "_" + name
	}
	return name
}

func urlHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
