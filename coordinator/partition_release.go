//go:build !fractaldebug

package coordinator

const checkPartition = false
