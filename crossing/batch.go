package crossing

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/thlorenz/raycast/position"
	"sync"
)

// Segment is one search job of SearchAll.
type Segment struct {
	From position.TilePosition
	To   position.TilePosition
}

// BatchResult is the outcome of the segment with the same index.
type BatchResult struct {
	Result Result
	Err    error
}

// SearchAll runs Search for every segment on the given number of workers. The predicate is shared by all workers and
// therefore has to be safe for concurrent use. Results keep the order of the segments.
func SearchAll(segments []Segment, valid Predicate, opts Options, numWorkers int) []BatchResult {
	results := make([]BatchResult, len(segments))
	if len(segments) == 0 {
		return results
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(segments) {
		numWorkers = len(segments)
	}

	// OnStep may not be safe for concurrent use and interleaved steps of different segments are meaningless anyway.
	opts.OnStep = nil

	segmentsPerWorker := len(segments) / numWorkers
	sigolo.Debugf("Search %d segments on %d workers", len(segments), numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		from := i * segmentsPerWorker
		to := from + segmentsPerWorker
		if i == numWorkers-1 {
			// Last worker: make sure it goes til the last segment
			to = len(segments)
		}

		go func(from int, to int) {
			defer wg.Done()
			for j := from; j < to; j++ {
				result, err := Search(segments[j].From, segments[j].To, valid, opts)
				results[j] = BatchResult{Result: result, Err: err}
			}
		}(from, to)
	}
	wg.Wait()

	return results
}
