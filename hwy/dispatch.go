package hwy

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set whose register width is
// used for native vectors.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD: native vectors have a single lane.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector). The
	// hardware vector length is not visible to Go, so native vectors use
	// the architectural minimum of 128 bits.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the register width of the level in bytes, or 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchSSE2, DispatchNEON, DispatchSVE:
		return 16
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 0
	}
}

// ParseLevel parses a level name such as "avx2" or "neon".
func ParseLevel(s string) (DispatchLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic", "none":
		return DispatchScalar, nil
	case "sse2":
		return DispatchSSE2, nil
	case "avx2":
		return DispatchAVX2, nil
	case "avx512", "avx-512":
		return DispatchAVX512, nil
	case "neon", "asimd":
		return DispatchNEON, nil
	case "sve":
		return DispatchSVE, nil
	default:
		return DispatchScalar, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// currentLevel is the selected SIMD level for this runtime.
// Set by initDispatch, called from init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

// overrideErr records why HWY_TARGET was not honored. It is reported once a
// logger is installed.
var overrideErr error

// CPU feature flags, set by the platform init before initDispatch runs.
var (
	hasSSE2   bool
	hasAVX2   bool // AVX2 + FMA
	hasAVX512 bool // AVX-512 F + BW
	hasNEON   bool
	hasSVE    bool
)

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, 0 for scalar.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// LevelAvailable reports whether the CPU supports the given level.
func LevelAvailable(level DispatchLevel) bool {
	switch level {
	case DispatchScalar:
		return true
	case DispatchSSE2:
		return hasSSE2
	case DispatchAVX2:
		return hasAVX2
	case DispatchAVX512:
		return hasAVX512
	case DispatchNEON:
		return hasNEON
	case DispatchSVE:
		return hasSVE
	default:
		return false
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// initDispatch picks the level from the detected feature flags and the
// HWY_NO_SIMD / HWY_TARGET environment variables.
func initDispatch() {
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	level := bestLevel()
	if s := os.Getenv("HWY_TARGET"); s != "" {
		switch want, err := ParseLevel(s); {
		case err != nil:
			overrideErr = fmt.Errorf("HWY_TARGET ignored: %w", err)
		case !LevelAvailable(want):
			overrideErr = fmt.Errorf("HWY_TARGET ignored: %w: %s", ErrLevelUnavailable, want)
		default:
			level = want
		}
	}
	setLevel(level)
}

// bestLevel returns the widest level the CPU supports. SVE is never picked
// automatically: at its minimum width it matches NEON, so it is only used
// when requested through HWY_TARGET.
func bestLevel() DispatchLevel {
	switch {
	case hasAVX512:
		return DispatchAVX512
	case hasAVX2:
		return DispatchAVX2
	case hasNEON:
		return DispatchNEON
	case hasSSE2:
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
}

// sizeOf returns the size in bytes of T.
func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxLanes returns the number of lanes of a native vector of type T.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
//
// With the scalar level it returns 1.
func MaxLanes[T Lanes]() int {
	return ScalableTag[T]().Lanes()
}
