package vec

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the vector capabilities of the host CPU.
type Features struct {
	// x86/amd64 SIMD features
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool

	// ARM SIMD features
	HasNEON bool

	Architecture string // runtime.GOARCH
	VectorBits   int    // Widest usable vector register in bits (128 minimum)
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
)

// DetectFeatures returns the CPU vector features of the current system.
// Detection runs once; the result is cached.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

func detectFeaturesImpl() Features {
	f := Features{
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA,
		HasAVX512F:   cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		VectorBits:   128,
	}
	switch {
	case f.HasAVX512F:
		f.VectorBits = 512
	case f.HasAVX2 || f.HasAVX:
		f.VectorBits = 256
	}
	return f
}

// Level returns a short name for the widest vector extension detected.
func (f Features) Level() string {
	switch {
	case f.HasAVX512F:
		return "AVX-512"
	case f.HasAVX2:
		return "AVX2"
	case f.HasAVX:
		return "AVX"
	case f.HasNEON:
		return "NEON"
	case f.Architecture == "amd64":
		return "SSE2"
	default:
		return "None"
	}
}

// Lanes returns how many elements of elemSize bytes fit one vector register.
func (f Features) Lanes(elemSize int) int {
	if elemSize <= 0 {
		panic(fmt.Sprintf("vec: invalid element size %d", elemSize))
	}
	return max(f.VectorBits/8/elemSize, 1)
}
