package runner

import (
	"context"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"golang.org/x/time/rate"

	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/repo"
)

// EndpointResult records the outcome of one endpoint in a batch.
type EndpointResult struct {
	Endpoint string
	Response *http.Response
	Err      error
}

func (r *EndpointResult) Failed() bool { return r.Err != nil }

// Summary aggregates latencies across a batch. Values are in
// milliseconds.
type Summary struct {
	Total   int
	Failed  int
	Min     int64
	Mean    float64
	P50     int64
	P95     int64
	P99     int64
	Max     int64
	Elapsed time.Duration
}

// Reporter is called after each endpoint completes, in order.
type Reporter func(result EndpointResult)

// Runner executes every endpoint of a collection sequentially.
type Runner struct {
	manager *repo.Manager
	client  *http.Client
	limiter *rate.Limiter
	report  Reporter
}

type Option func(*Runner)

// WithRate paces the batch at n requests per second.
func WithRate(n float64) Option {
	return func(r *Runner) {
		if n > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(n), 1)
		}
	}
}

func WithReporter(fn Reporter) Option {
	return func(r *Runner) { r.report = fn }
}

func New(manager *repo.Manager, client *http.Client, opts ...Option) *Runner {
	r := &Runner{manager: manager, client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunCollection sends every endpoint of the named collection, one at a
// time in stored order. A failing endpoint is recorded and the batch
// continues; only a missing collection aborts. Placeholders are sent
// verbatim, batches never prompt.
func (r *Runner) RunCollection(ctx context.Context, name string) (*Summary, error) {
	col, err := r.manager.Collection(name)
	if err != nil {
		return nil, err
	}

	hist := hdrhistogram.New(1, 60_000_000, 3)
	summary := &Summary{}
	start := time.Now()

	for _, ep := range col.Endpoints {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resolved, err := r.manager.ResolveEndpoint(name, ep.Name)
		if err != nil {
			// Store changed under us mid-batch; count it as a failure.
			r.emit(EndpointResult{Endpoint: ep.Name, Err: err}, summary)
			continue
		}

		req := &http.Request{
			Method:  resolved.Method,
			URL:     resolved.URL,
			Headers: resolved.Headers,
		}
		if resolved.Body != nil {
			req.Body = *resolved.Body
		}

		resp, err := r.client.Do(ctx, req)
		result := EndpointResult{Endpoint: ep.Name, Response: resp, Err: err}
		if err == nil {
			hist.RecordValue(resp.Duration.Microseconds())
		}
		r.emit(result, summary)
	}

	summary.Elapsed = time.Since(start)
	if hist.TotalCount() > 0 {
		summary.Min = hist.Min() / 1000
		summary.Mean = hist.Mean() / 1000
		summary.P50 = hist.ValueAtQuantile(50) / 1000
		summary.P95 = hist.ValueAtQuantile(95) / 1000
		summary.P99 = hist.ValueAtQuantile(99) / 1000
		summary.Max = hist.Max() / 1000
	}
	return summary, nil
}

func (r *Runner) emit(result EndpointResult, summary *Summary) {
	summary.Total++
	if result.Failed() {
		summary.Failed++
	}
	if r.report != nil {
		r.report(result)
	}
}
