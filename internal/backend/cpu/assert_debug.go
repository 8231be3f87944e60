//go:build kernelsdebug

package cpu

const debugAssertions = true
