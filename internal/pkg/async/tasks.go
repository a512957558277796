package async

import (
	"sync"
)

// Map runs f over src with at most concurrencyLimit invocations in flight and
// fans results back in. Errors are collected into an Errors list rather than
// aborting the remaining work. Result ordering is unspecified.
func Map[T any, D any](src []T, concurrencyLimit int, f func(T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = len(src)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []D
		errs    Errors
	)

	limiter := make(chan struct{}, concurrencyLimit)

	wg.Add(len(src))
	for _, element := range src {
		limiter <- struct{}{}
		go func(el T) {
			defer func() {
				<-limiter
				wg.Done()
			}()

			r, err := f(el)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs.E = append(errs.E, err)
				return
			}
			results = append(results, r)
		}(element)
	}

	wg.Wait()

	return results, errs.Wrapped()
}
