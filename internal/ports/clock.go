package ports

// Clock is a monotonic millisecond counter. Now is non-decreasing for the
// process lifetime; the epoch is arbitrary.
type Clock interface {
	Now() int64
}
