package edges

import (
	"errors"

	"github.com/katalvlaran/pixkit/parallel"
	"github.com/katalvlaran/pixkit/raster"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrBadThresholds indicates Low > High or a negative threshold.
	ErrBadThresholds = errors.New("edges: thresholds must satisfy 0 ≤ low ≤ high")
)

// Options configures a Detect call.
type Options struct {
	// Low and High are the hysteresis thresholds on gradient magnitude.
	// Must satisfy 0 ≤ Low ≤ High.
	Low, High float64
	// Conn selects the neighbor set for hysteresis tracking.
	Conn raster.Connectivity
	// Blur is the side length of the Gaussian pre-smoothing kernel;
	// 0 disables smoothing.
	Blur int
	// BlurSigma is the Gaussian standard deviation; <= 0 derives it from
	// Blur (see convolve.Gaussian).
	BlurSigma float64
	// Pool partitions the pixel-parallel stages; nil runs sequentially.
	Pool *parallel.Pool
}

// DefaultOptions returns the conventional Canny configuration:
// thresholds 50/150, 8-connected hysteresis, 5×5 Gaussian smoothing with
// sigma 1.4.
func DefaultOptions() Options {
	return Options{
		Low:       50,
		High:      150,
		Conn:      raster.Conn8,
		Blur:      5,
		BlurSigma: 1.4,
	}
}
