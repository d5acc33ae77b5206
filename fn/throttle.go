package fn

import (
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Throttle returns a function that runs f at most once per interval. Calls
// made inside the interval are dropped and report false.
func Throttle[A any](interval time.Duration, f func(A)) func(A) bool {
	if interval <= 0 {
		log.Panicf("throttle interval must be greater than 0, got %s", interval)
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	return func(arg A) bool {
		if !limiter.Allow() {
			return false
		}
		f(arg)
		return true
	}
}
