package swagger

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

// DefaultDocPath is where ACA-Py serves its Swagger document.
const DefaultDocPath = "/api/docs/swagger.json"

var commonDocPaths = []string{
	DefaultDocPath,
	"/api/doc/swagger.json",
	"/swagger.json",
	"/openapi.json",
}

type discoverer struct {
	client  *http.Client
	headers http.Header
	paths   []string
	logger  *slog.Logger
}

func newDiscoverer(client *http.Client, headers http.Header, logger *slog.Logger, extra []string) *discoverer {
	paths := make([]string, 0, len(extra)+len(commonDocPaths))
	seen := make(map[string]bool)
	for _, p := range slices.Concat(extra, commonDocPaths) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return &discoverer{
		client:  client,
		headers: headers,
		paths:   paths,
		logger:  logger.With("component", "swagger_discoverer"),
	}
}

// looksLikeDocument reports whether src already names a document rather than
// an agent base URL.
func looksLikeDocument(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasSuffix(lower, ".json") ||
		strings.HasSuffix(lower, ".yaml") ||
		strings.HasSuffix(lower, ".yml") ||
		strings.Contains(lower, "swagger") ||
		strings.Contains(lower, "openapi")
}

// resolve returns the document URL for src. Base URLs are probed against the
// known document paths; when nothing answers, src is returned unchanged.
func (d *discoverer) resolve(ctx context.Context, src string) string {
	log := d.logger.With(slog.String("source", src))
	if looksLikeDocument(src) {
		log.Debug("Source appears to be a direct document location")
		return src
	}
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return src
	}

	base := strings.TrimRight(u.String(), "/")
	for _, p := range d.paths {
		candidate := base + p
		ok, err := d.probe(ctx, candidate)
		if ok {
			return candidate
		}
		if err != nil {
			log.Debug("Failed to probe document path", slog.String("url", candidate), slog.Any("error", err))
		}
	}
	log.Warn("Auto-discovery failed, using original source")
	return src
}

func (d *discoverer) probe(ctx context.Context, candidate string) (bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, candidate, nil)
	if err != nil {
		return false, err
	}
	for k, vs := range d.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	ct := resp.Header.Get("Content-Type")
	return strings.Contains(ct, "json") || strings.Contains(ct, "yaml"), nil
}
