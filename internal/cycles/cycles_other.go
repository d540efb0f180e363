//go:build !linux

package cycles

func newPlatform() Source { return newClockSource() }
