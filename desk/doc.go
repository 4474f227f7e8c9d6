// Package desk serves memoized forecasts to concurrent callers without
// sharing a cache between goroutines.
//
// A Desk runs a fixed pool of workers. Every worker owns a private
// *memo.Cache, and requests are routed to workers by a hash of their Series
// name, so all requests for one series are served in order by the same
// worker and hit the same cache. Callers never touch a cache directly.
//
//	d, err := desk.New(ctx, desk.DefaultOptions(), logger)
//	...
//	defer d.Close()
//	resp, err := d.Submit(ctx, desk.NewRequest("revenue", 10000, 5, 12))
package desk
