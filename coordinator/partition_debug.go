//go:build fractaldebug

package coordinator

// Assert the frame partition before every run.
const checkPartition = true
