package converter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds batch concurrency when the caller does not
const DefaultWorkers = 4

// BatchItem pairs an input with its conversion outcome. Exactly one of
// Result and Err is meaningful; a failed conversion may still carry a
// partial Result with findings.
type BatchItem struct {
	Input  string
	Result *Result
	Err    error
}

// BatchSummary aggregates a batch run
type BatchSummary struct {
	Items     []BatchItem
	Succeeded int
	Failed    int
}

// ConvertBatch converts every input concurrently with a bounded worker
// pool. A canceled context stops dispatching new inputs; conversions
// already in flight run to completion. Per-file failures are collected,
// not propagated, so one bad resume never aborts the batch.
func ConvertBatch(ctx context.Context, inputs []string, workers int, opts Options) BatchSummary {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	opts.Quiet = true

	items := make([]BatchItem, len(inputs))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, input := range inputs {
		if ctx.Err() != nil {
			for j := i; j < len(inputs); j++ {
				items[j] = BatchItem{Input: inputs[j], Err: fmt.Errorf("conversion canceled: %w", ctx.Err())}
			}
			break
		}
		g.Go(func() error {
			result, err := Convert(ctx, input, opts)
			items[i] = BatchItem{Input: input, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	summary := BatchSummary{Items: items}
	for _, item := range items {
		if item.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}
