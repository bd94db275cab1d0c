package event

import "time"

// StepResult is returned by the closure given to FixedStep to control the
// loop.
type StepResult int

const (
	// Continue signals that the loop should run another iteration.
	Continue StepResult = iota
	// Stop signals that the loop should exit after this iteration.
	Stop
)

// FixedStep calls fn roughly once per interval until it returns Stop.
//
// Each iteration sleeps off whatever is left of the interval budget, then
// calls fn with the actually elapsed wall-clock time in seconds. fn runs at
// least once.
func FixedStep(interval time.Duration, fn func(dt float64) StepResult) {
	last := time.Now()
	for {
		if elapsed := time.Since(last); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
		now := time.Now()
		dt := now.Sub(last).Seconds()
		if fn(dt) == Stop {
			return
		}
		last = now
	}
}

// FixedStep60 runs fn at roughly 60 iterations per second. See FixedStep.
func FixedStep60(fn func(dt float64) StepResult) {
	FixedStep(time.Second/60, fn)
}
