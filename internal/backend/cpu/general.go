package cpu

import (
	"sync"

	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/vec"
)

// The general path: any dtype triple the cast policy admits, any legal
// broadcast. Kernels are looked up in jump tables indexed by dtype and
// built once; every entry is a loop specialised on its compute type.

const numDataTypes = int(tensor.Float64) + 1

// binaryKernel writes out = a * b. out already has the broadcast shape.
type binaryKernel func(a, b, out *tensor.RawTensor)

// scalarKernel writes out = a * s. out already has a's shape.
type scalarKernel func(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor)

type generalEntry struct {
	common tensor.DataType // PromoteTypes(a, b, true) the entry was built for
	run    binaryKernel
}

var (
	generalKernels     [numDataTypes][numDataTypes][numDataTypes]generalEntry
	scalarKernels      [numDataTypes]scalarKernel
	generalKernelsOnce sync.Once
)

func buildKernelTables() {
	for _, a := range tensor.DataTypes() {
		for _, b := range tensor.DataTypes() {
			common := tensor.PromoteTypes(a, b, true)
			for _, out := range tensor.DataTypes() {
				if !tensor.CanCast(common, out) {
					continue
				}
				generalKernels[a][b][out] = generalEntry{common: common, run: binaryKernelFor(common)}
			}
		}
	}
	for _, compute := range tensor.DataTypes() {
		scalarKernels[compute] = scalarKernelFor(compute)
	}
}

// lookupGeneralKernel returns the kernel for (a, b, out); the zero entry
// means the triple is not castable.
func lookupGeneralKernel(a, b, out tensor.DataType) generalEntry {
	generalKernelsOnce.Do(buildKernelTables)
	return generalKernels[a][b][out]
}

func lookupScalarKernel(compute tensor.DataType) scalarKernel {
	generalKernelsOnce.Do(buildKernelTables)
	return scalarKernels[compute]
}

// binaryKernelFor picks the instantiation computing in the given type.
// Bool computes in uint8: 0/1 products are exactly logical AND.
func binaryKernelFor(compute tensor.DataType) binaryKernel {
	switch compute {
	case tensor.Bool, tensor.Uint8:
		return mulGeneral[uint8]
	case tensor.Int8:
		return mulGeneral[int8]
	case tensor.Int16:
		return mulGeneral[int16]
	case tensor.Int32:
		return mulGeneral[int32]
	case tensor.Int64:
		return mulGeneral[int64]
	case tensor.Float16, tensor.Float32:
		return mulGeneral[float32]
	case tensor.Float64:
		return mulGeneral[float64]
	default:
		return nil
	}
}

func scalarKernelFor(compute tensor.DataType) scalarKernel {
	switch compute {
	case tensor.Bool, tensor.Uint8:
		return mulScalarGeneral[uint8]
	case tensor.Int8:
		return mulScalarGeneral[int8]
	case tensor.Int16:
		return mulScalarGeneral[int16]
	case tensor.Int32:
		return mulScalarGeneral[int32]
	case tensor.Int64:
		return mulScalarGeneral[int64]
	case tensor.Float16, tensor.Float32:
		return mulScalarGeneral[float32]
	case tensor.Float64:
		return mulScalarGeneral[float64]
	default:
		return nil
	}
}

// mulGeneral casts both operands to C, multiplies, and casts the product to
// out's dtype, broadcasting a and b to out's shape.
func mulGeneral[C vec.Number](a, b, out *tensor.RawTensor) {
	loadA := loaderFor[C](a)
	loadB := loaderFor[C](b)
	store := storerFor[C](out)

	outShape := out.Shape()
	n := out.NumElements()

	if a.Shape().Equal(outShape) && b.Shape().Equal(outShape) {
		for i := 0; i < n; i++ {
			store(i, loadA(i)*loadB(i))
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(a.Shape(), outShape)
	bStrides := computeBroadcastStridesForShape(b.Shape(), outShape)
	for i := 0; i < n; i++ {
		aIdx := computeFlatIndex(i, outStrides, aStrides)
		bIdx := computeFlatIndex(i, outStrides, bStrides)
		store(i, loadA(aIdx)*loadB(bIdx))
	}
}

// mulScalarGeneral casts a and s to C, multiplies, and casts to out's dtype.
func mulScalarGeneral[C vec.Number](a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) {
	load := loaderFor[C](a)
	store := storerFor[C](out)
	c := scalarAs[C](s)

	n := out.NumElements()
	for i := 0; i < n; i++ {
		store(i, load(i)*c)
	}
}
