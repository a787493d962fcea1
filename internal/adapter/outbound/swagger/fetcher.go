package swagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/i2y/acapyclient/internal/domain"
)

// Fetcher implements usecase.DocumentFetcher for Swagger 2.0 and OpenAPI 3
// documents served by an agent or stored on disk.
type Fetcher struct {
	httpClient *http.Client
	headers    http.Header
	discoverer *discoverer
	logger     *slog.Logger
}

// NewFetcher creates a Fetcher. headers are sent with every HTTP request,
// which is how the admin API key reaches a protected agent.
func NewFetcher(client *http.Client, headers http.Header, logger *slog.Logger, docPaths ...string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		httpClient: client,
		headers:    headers.Clone(),
		discoverer: newDiscoverer(client, headers, logger, docPaths),
		logger:     logger.With("component", "swagger_fetcher"),
	}
}

// Fetch loads a document from a URL, an agent base URL or a local file path
// and flattens it into the operations it declares.
func (f *Fetcher) Fetch(ctx context.Context, src string) (domain.APIDocument, error) {
	log := f.logger.With(slog.String("source", src))
	log.Info("Fetching API document")

	resolved := f.discoverer.resolve(ctx, src)
	if resolved != src {
		log.Info("Auto-discovered API document", slog.String("resolved_url", resolved))
	}

	raw, err := f.read(ctx, resolved)
	if err != nil {
		return domain.APIDocument{}, err
	}

	format, err := detectFormat(raw)
	if err != nil {
		log.Error("Unrecognised API document", slog.Any("error", err))
		return domain.APIDocument{}, fmt.Errorf("failed to parse API document from %s: %w", src, err)
	}

	var doc *openapi3.T
	switch format {
	case domain.DocumentFormatSwagger2:
		doc, err = convertV2ToV3(raw)
	default:
		loader := &openapi3.Loader{Context: ctx}
		doc, err = loader.LoadFromData(raw)
	}
	if err != nil {
		log.Error("Failed to parse API document", slog.Any("error", err))
		return domain.APIDocument{}, fmt.Errorf("failed to parse API document from %s: %w", src, err)
	}

	if validateErr := doc.Validate(ctx); validateErr != nil {
		log.Warn("API document validation failed", slog.Any("validation_error", validateErr))
	}

	out := domain.APIDocument{
		Source:     resolved,
		Format:     format,
		Operations: collectOperations(doc),
		RawData:    raw,
	}
	if doc.Info != nil {
		out.Title = doc.Info.Title
		out.Version = doc.Info.Version
	}
	log.Info("Successfully fetched API document",
		slog.String("format", string(format)),
		slog.Int("operation_count", len(out.Operations)))
	return out, nil
}

func (f *Fetcher) read(ctx context.Context, src string) ([]byte, error) {
	log := f.logger.With(slog.String("source", src))

	u, parseErr := url.ParseRequestURI(src)
	if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
		log.Debug("Assuming local file path")
		data, err := os.ReadFile(src)
		if err != nil {
			log.Error("Failed to read API document from file", slog.Any("error", err))
			return nil, fmt.Errorf("failed to read API document from file %s: %w", src, err)
		}
		return data, nil
	}

	log.Debug("Fetching from URL")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", src, err)
	}
	for k, vs := range f.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to fetch API document from URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch API document from URL %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Received non-OK status code from URL", slog.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("failed to fetch API document from URL %s: status %s", src, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", src, err)
	}
	return data, nil
}

// detectFormat inspects the top-level "swagger" or "openapi" key.
func detectFormat(data []byte) (domain.DocumentFormat, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("document is neither JSON nor YAML: %w", err)
	}
	if v, ok := root["openapi"].(string); ok && strings.HasPrefix(v, "3.") {
		return domain.DocumentFormatOpenAPI3, nil
	}
	if v, ok := root["swagger"].(string); ok && strings.HasPrefix(v, "2.") {
		return domain.DocumentFormatSwagger2, nil
	}
	return "", fmt.Errorf("missing or unsupported swagger/openapi version field")
}

func convertV2ToV3(data []byte) (*openapi3.T, error) {
	data, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, fmt.Errorf("decode swagger 2.0 document: %w", err)
	}
	return openapi2conv.ToV3(&v2)
}

// toJSON re-encodes a YAML document as JSON. JSON input is returned as is.
func toJSON(data []byte) ([]byte, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return data, nil
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode YAML document: %w", err)
	}
	return json.Marshal(stringKeys(v))
}

// stringKeys converts YAML mappings with non-string keys (e.g. unquoted
// status codes) into maps encoding/json accepts.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}

func collectOperations(doc *openapi3.T) []domain.OperationRef {
	if doc.Paths == nil {
		return nil
	}
	var ops []domain.OperationRef
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			ref := domain.OperationRef{Method: strings.ToUpper(method), Path: path}
			if op != nil {
				ref.Name = op.OperationID
			}
			ops = append(ops, ref)
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
	return ops
}
