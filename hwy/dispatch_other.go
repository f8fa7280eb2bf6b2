//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the scalar level. wasm SIMD128 and the
	// riscv64 vector extension would slot in here.
	setScalarMode()
}
