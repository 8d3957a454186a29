package shared

import (
	"sync"

	"github.com/spf13/pflag"
)

// Launch statuses.
const (
	StatusOK     = "OK"
	StatusFailed = "FAILED"
)

// GenericResult is the outcome of one unit of work, for example one analysed file.
type GenericResult struct {
	Args    interface{} `json:"args"`
	Result  interface{} `json:"result"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
}

// GenericLaunchesResult groups the results of a command run.
type GenericLaunchesResult struct {
	Launches []GenericResult `json:"launches"`
}

// Failed returns the launches whose status is StatusFailed.
func (r GenericLaunchesResult) Failed() []GenericResult {
	var failed []GenericResult
	for _, launch := range r.Launches {
		if launch.Status == StatusFailed {
			failed = append(failed, launch)
		}
	}
	return failed
}

// ForEveryStringWithBoundedGoroutines calls f for every value with at most limit calls
// running at once, and returns when all calls are done. A limit below 1 runs sequentially.
func ForEveryStringWithBoundedGoroutines(limit int, values []interface{}, f func(i int, value interface{})) {
	if limit < 1 {
		limit = 1
	}
	guard := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, value := range values {
		guard <- struct{}{} // blocks while limit calls are in flight
		wg.Add(1)
		go func(i int, value interface{}) {
			defer func() {
				<-guard
				wg.Done()
			}()
			f(i, value)
		}(i, value)
	}
	wg.Wait()
}

// HasFlags reports whether any flag in the set was set on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) {
		changed = true
	})
	return changed
}
