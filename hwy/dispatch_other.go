//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures have no detected vector unit; native vectors are
	// single-lane and wider widths are emulated.
	initDispatch()
}
