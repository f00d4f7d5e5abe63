// Package async runs a computation in its own goroutine and hands back a
// Future for its result.
//
//	f := async.Async(ctx, fetcher, func(ctx context.Context, f geo.Fetcher) (geo.Lookup, error) {
//		return f.Fetch(ctx)
//	})
//	lookup, err := f.Await()
//
// Await blocks until completion, AwaitContext and AwaitWithTimeout bound the
// wait, IsComplete polls. A Future completes exactly once.
package async
