//go:build !kernelsdebug

package cpu

const debugAssertions = false
