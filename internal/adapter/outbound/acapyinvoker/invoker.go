package acapyinvoker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

// BodyParam names the argument that carries an explicit request body.
const BodyParam = usecase.BodyArgument

var rawDecoders = client.Decoders[map[string]any]{
	200: client.RawObject,
	201: client.RawObject,
}

// Invoker implements usecase.EndpointInvoker on top of the admin API client.
// Arguments are sorted onto the path, the query string and the body by the
// endpoint's declaration.
type Invoker struct {
	client *client.Client
	logger *slog.Logger
}

func New(c *client.Client, logger *slog.Logger) *Invoker {
	return &Invoker{
		client: c,
		logger: logger.With("component", "acapy_invoker"),
	}
}

// Invoke builds an operation from params and executes it.
func (i *Invoker) Invoke(ctx context.Context, ep client.Endpoint, params map[string]any) (*types.Response[map[string]any], error) {
	log := i.logger.With(slog.String("operation", ep.Name))

	op, leftover, err := bind(ep, params)
	if err != nil {
		log.Warn("Rejected invocation arguments", slog.Any("error", err))
		return nil, err
	}
	if len(leftover) > 0 {
		log.Warn("Ignoring arguments the endpoint does not accept", slog.Any("arguments", leftover))
	}

	log.Debug("Invoking endpoint",
		slog.Int("path_values", len(op.PathValues)),
		slog.Int("query_params", len(op.Params)),
		slog.Bool("has_body", op.Body != nil))
	return client.Do(ctx, i.client, op, rawDecoders)
}

// bind distributes params over the operation. Path placeholders take
// precedence, then declared query names. For endpoints with a body, an
// explicit "body" object is used as is; otherwise the remaining arguments
// form the body. The names of arguments that found no home are returned.
func bind(ep client.Endpoint, params map[string]any) (client.Operation, []string, error) {
	op := client.Operation{Endpoint: ep, PathValues: make(map[string]string)}
	rest := make(map[string]any, len(params))
	for k, v := range params {
		rest[k] = v
	}

	for _, name := range ep.PathParams() {
		v, ok := rest[name]
		if !ok {
			continue
		}
		delete(rest, name)
		if v != nil {
			op.PathValues[name] = fmt.Sprint(v)
		}
	}

	for _, name := range ep.Query {
		v, ok := rest[name]
		if !ok {
			continue
		}
		delete(rest, name)
		if v != nil {
			op.Params = append(op.Params, client.QueryValue(name, v))
		}
	}

	if ep.HasBody {
		if raw, ok := rest[BodyParam]; ok {
			delete(rest, BodyParam)
			switch b := raw.(type) {
			case map[string]any:
				op.Body = models.Object(b)
			case nil:
			default:
				return client.Operation{}, nil, fmt.Errorf("%w: %s must be an object, got %T", usecase.ErrInvalidParams, BodyParam, raw)
			}
		} else if len(rest) > 0 {
			op.Body = models.Object(rest)
			rest = nil
		}
	}

	leftover := make([]string, 0, len(rest))
	for k := range rest {
		leftover = append(leftover, k)
	}
	sort.Strings(leftover)
	return op, leftover, nil
}
