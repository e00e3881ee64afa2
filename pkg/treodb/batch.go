package treodb

import (
	"context"
	"runtime"
	"sync"
)

// DecodeAll decodes a collection of independent records concurrently and
// returns one result per blob, in input order. Options are resolved once and
// shared read-only by every worker, so the whole batch sees one consistent
// configuration. On a structural error the results decoded so far (up to the
// first failing record) are returned alongside the error.
func DecodeAll(ctx context.Context, blobs [][]byte, opts DecodeOptions) ([]Result, error) {
	ctx, cfg, err := opts.toInternal(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(blobs))
	errs := make([]error, len(blobs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, blob := range blobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, blob []byte) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = decodeParsed(ctx, blob, cfg)
		}(i, blob)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return results[:i], err
		}
	}
	return results, nil
}
