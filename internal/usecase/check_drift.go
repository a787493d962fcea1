package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/i2y/acapyclient/internal/domain"
)

// CheckDriftUseCase compares the endpoint catalog with the API document an
// agent publishes.
type CheckDriftUseCase struct {
	catalog EndpointCatalog
	fetcher DocumentFetcher
	logger  *slog.Logger
}

func NewCheckDriftUseCase(catalog EndpointCatalog, fetcher DocumentFetcher, logger *slog.Logger) *CheckDriftUseCase {
	return &CheckDriftUseCase{
		catalog: catalog,
		fetcher: fetcher,
		logger:  logger.With("usecase", "CheckDrift"),
	}
}

// Execute fetches the document at source and reports operations present on
// only one side. Both lists are sorted by path, then method.
func (uc *CheckDriftUseCase) Execute(ctx context.Context, source string) (*domain.DriftReport, error) {
	log := uc.logger.With(slog.String("source", source))
	log.Info("Starting drift check")

	doc, err := uc.fetcher.Fetch(ctx, source)
	if err != nil {
		log.Error("Failed to fetch API document", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch API document from %s: %w", source, err)
	}

	endpoints, err := uc.catalog.List(ctx)
	if err != nil {
		log.Error("Failed to list catalog", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	published := make(map[string]domain.OperationRef, len(doc.Operations))
	for _, op := range doc.Operations {
		published[op.Key()] = op
	}

	report := &domain.DriftReport{
		Source:          doc.Source,
		AgentVersion:    doc.Version,
		MissingOnServer: []domain.OperationRef{},
		Uncovered:       []domain.OperationRef{},
	}
	known := make(map[string]struct{}, len(endpoints))
	for _, ep := range endpoints {
		ref := domain.OperationRef{Method: ep.Method, Path: ep.Path, Name: ep.Name}
		known[ref.Key()] = struct{}{}
		if _, ok := published[ref.Key()]; ok {
			report.Matched++
			continue
		}
		report.MissingOnServer = append(report.MissingOnServer, ref)
	}
	for key, op := range published {
		if _, ok := known[key]; !ok {
			report.Uncovered = append(report.Uncovered, op)
		}
	}
	sortRefs(report.MissingOnServer)
	sortRefs(report.Uncovered)

	log.Info("Drift check finished",
		slog.Int("matched", report.Matched),
		slog.Int("missing_on_server", len(report.MissingOnServer)),
		slog.Int("uncovered", len(report.Uncovered)))
	return report, nil
}

func sortRefs(refs []domain.OperationRef) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Path != refs[j].Path {
			return refs[i].Path < refs[j].Path
		}
		return refs[i].Method < refs[j].Method
	})
}
