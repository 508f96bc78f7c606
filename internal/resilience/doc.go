// Package resilience groups the fault tolerance helpers used around the AI
// extraction providers:
//
//   - circuitbreaker stops calling a provider that keeps failing
//   - retry repeats transient failures with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.ExtractorConfig("claude"))
//	out, err := retry.Do(ctx, retry.ExtractorConfig(), func() (Suggestion, error) {
//	    return circuitbreaker.Call(cb, func() (Suggestion, error) {
//	        return callProvider(ctx)
//	    })
//	})
package resilience
