package bidding

import "time"

// ExtendedDeadline applies the soft-close rule: a bid accepted within window
// of endAt pushes the deadline to now + extension.
//
// The function is idempotent (reapplying with the same now yields the same
// deadline) and monotonic (the deadline never moves backward). There is no
// cap on the number of extensions; capping is a policy decision for the
// integrating application.
func ExtendedDeadline(endAt, now time.Time, window, extension time.Duration) time.Time {
	if window <= 0 || extension <= 0 {
		return endAt
	}
	if endAt.Sub(now) > window {
		return endAt
	}
	candidate := now.Add(extension)
	if candidate.Before(endAt) {
		return endAt
	}
	return candidate
}
