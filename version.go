// version.go exposes the codec revision this package implements, mirroring
// the aptx_major/aptx_minor/aptx_patch constants of the reference
// implementation this package is compatible with.

package aptx

const (
	versionMajor = 0
	versionMinor = 2
	versionPatch = 1
)

// Version returns the [major, minor, patch] version of the aptX codec
// behavior this package implements, for callers that want to pin or log
// the exact bitstream semantics in use.
func Version() [3]int {
	return [3]int{versionMajor, versionMinor, versionPatch}
}
