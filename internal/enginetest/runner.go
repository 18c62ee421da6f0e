package enginetest

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunParallel runs fn(i) for i in [0, n) on n goroutines. All goroutines are
// released together once every one of them has started. It returns the first
// error reported by any call.
func RunParallel(n int, fn func(i int) error) error {
	if n <= 0 {
		return fmt.Errorf("RunParallel requires at least one goroutine, got %d", n)
	}

	start := make(chan struct{})
	ready := make(chan struct{}, n)

	var eg errgroup.Group
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			ready <- struct{}{}
			<-start
			return fn(i)
		})
	}
	for i := 0; i < n; i++ {
		<-ready
	}
	close(start)

	return eg.Wait()
}
