package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/i2y/acapyclient/pkg/types"
)

type rawResponse struct {
	statusCode int
	header     http.Header
	content    []byte
}

type exchange struct {
	raw *rawResponse
	err error
}

// pending yields the result of an in-flight exchange. The bool is false when
// the wait ended because ctx did, leaving the exchange still in flight.
type pending func(ctx context.Context) (exchange, bool)

// strategy decides where the HTTP round trip runs relative to the caller.
type strategy func(ctx context.Context, send func(context.Context) exchange) pending

// blocking runs the round trip on the caller's goroutine.
func blocking(ctx context.Context, send func(context.Context) exchange) pending {
	ex := send(ctx)
	return func(context.Context) (exchange, bool) { return ex, true }
}

// deferred starts the round trip on its own goroutine; the caller suspends
// only when it awaits the result.
func deferred(ctx context.Context, send func(context.Context) exchange) pending {
	ch := make(chan exchange, 1)
	go func() { ch <- send(ctx) }()
	return func(wait context.Context) (exchange, bool) {
		select {
		case ex := <-ch:
			return ex, true
		case <-wait.Done():
			return exchange{err: wait.Err()}, false
		}
	}
}

// Future is the result of DoAsync.
type Future[T any] struct {
	// turn holds a single token; only its holder waits on the exchange.
	turn   chan struct{}
	wait   pending
	finish func(exchange) (*types.Response[T], error)

	mu   sync.Mutex
	done bool
	resp *types.Response[T]
	err  error
}

func newFuture[T any](wait pending, finish func(exchange) (*types.Response[T], error)) *Future[T] {
	f := &Future[T]{turn: make(chan struct{}, 1), wait: wait, finish: finish}
	f.turn <- struct{}{}
	return f
}

func (f *Future[T]) result() (*types.Response[T], bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resp, f.done, f.err
}

// Await returns the decoded response once it arrives. If ctx ends first the
// request keeps running and Await may be called again; cancel the context
// given to DoAsync to stop the request itself. Concurrent callers each give
// up as soon as their own ctx ends.
func (f *Future[T]) Await(ctx context.Context) (*types.Response[T], error) {
	if resp, done, err := f.result(); done {
		return resp, err
	}
	select {
	case <-f.turn:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { f.turn <- struct{}{} }()

	if resp, done, err := f.result(); done {
		return resp, err
	}
	ex, ok := f.wait(ctx)
	if !ok {
		return nil, ex.err
	}
	resp, err := f.finish(ex)

	f.mu.Lock()
	f.resp, f.err, f.done = resp, err, true
	f.mu.Unlock()
	return resp, err
}

func start[T any](ctx context.Context, c *Client, op Operation, decoders Decoders[T], run strategy) *Future[T] {
	req, err := c.Build(op)
	if err != nil {
		return &Future[T]{done: true, err: err}
	}
	wait := run(ctx, func(ctx context.Context) exchange { return c.send(ctx, req) })
	return newFuture(wait, func(ex exchange) (*types.Response[T], error) {
		return finish(c, op.Endpoint, ex, decoders)
	})
}

func finish[T any](c *Client, ep Endpoint, ex exchange, decoders Decoders[T]) (*types.Response[T], error) {
	if ex.err != nil {
		return nil, ex.err
	}
	resp, err := Decode(ex.raw.statusCode, ex.raw.header, ex.raw.content, decoders)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}
	if _, mapped := decoders[resp.StatusCode]; !mapped && c.raiseOnUnexpectedStatus {
		return nil, &UnexpectedStatusError{Operation: ep.Name, StatusCode: resp.StatusCode, Content: resp.Content}
	}
	return resp, nil
}

// Do performs op and waits for the response.
func Do[T any](ctx context.Context, c *Client, op Operation, decoders Decoders[T]) (*types.Response[T], error) {
	return start(ctx, c, op, decoders, blocking).Await(ctx)
}

// DoAsync starts op and returns immediately. Build errors are reported by Await.
func DoAsync[T any](ctx context.Context, c *Client, op Operation, decoders Decoders[T]) *Future[T] {
	return start(ctx, c, op, decoders, deferred)
}

// Parsed reduces a detailed result to its payload. An unmapped status gives
// (nil, nil).
func Parsed[T any](resp *types.Response[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}
