package edges

import (
	"math"

	"github.com/katalvlaran/pixkit/convolve"
	"github.com/katalvlaran/pixkit/parallel"
	"github.com/katalvlaran/pixkit/raster"
)

// Per-pixel classification after double thresholding.
const (
	nonEdge uint8 = iota
	weakEdge
	strongEdge
)

// edgeOn is the output value for a confirmed edge pixel.
const edgeOn uint8 = 255

// Detect runs the full Canny-style pipeline over img and returns a binary
// edge map: edgeOn (255) for confirmed edges, 0 elsewhere. The input is
// never mutated.
// Returns ErrBadThresholds for an inverted or negative threshold pair,
// raster.ErrBadConnectivity for an unsupported Options.Conn, and
// raster.ErrEmptyBuffer for a degenerate image.
// Complexity: O(W·H) beyond the convolution cost.
func Detect[T raster.Channel](img *raster.Image[T], opts Options) (*raster.Image[uint8], error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	if opts.Low < 0 || opts.High < opts.Low {
		return nil, ErrBadThresholds
	}
	if !opts.Conn.Valid() {
		return nil, raster.ErrBadConnectivity
	}

	gx, gy, err := gradientOf(img, opts)
	if err != nil {
		return nil, err
	}

	w, h := img.Width, img.Height
	mag := make([]float64, w*h)
	dir := make([]float64, w*h)
	opts.Pool.ParallelFor(h, func(start, end int) {
		for i := start * w; i < end*w; i++ {
			mag[i] = math.Hypot(gx.Pix[i], gy.Pix[i])
			dir[i] = math.Atan2(gy.Pix[i], gx.Pix[i])
		}
	})

	suppressed := suppressNonMaxima(mag, dir, w, h, opts.Pool)
	states := threshold(suppressed, opts.Low, opts.High)
	out := hysteresis(states, w, h, opts.Conn)

	return out, nil
}

// Gradient computes the horizontal and vertical Sobel derivatives of img
// without quantization, for callers that need raw gradients (corner
// measures, orientation histograms).
func Gradient[T raster.Channel](img *raster.Image[T], pool *parallel.Pool) (gx, gy *raster.Image[float64], err error) {
	gx, err = convolve.ConvolveFloat(img, convolve.SobelX(), raster.Extend(), pool)
	if err != nil {
		return nil, nil, err
	}
	gy, err = convolve.ConvolveFloat(img, convolve.SobelY(), raster.Extend(), pool)
	if err != nil {
		return nil, nil, err
	}

	return gx, gy, nil
}

// gradientOf applies optional smoothing, then Sobel.
func gradientOf[T raster.Channel](img *raster.Image[T], opts Options) (gx, gy *raster.Image[float64], err error) {
	if opts.Blur > 0 {
		g, kerr := convolve.Gaussian(opts.Blur, opts.BlurSigma)
		if kerr != nil {
			return nil, nil, kerr
		}
		smoothed, cerr := convolve.ConvolveFloat(img, g, raster.Extend(), opts.Pool)
		if cerr != nil {
			return nil, nil, cerr
		}

		return Gradient(smoothed, opts.Pool)
	}

	return Gradient(img, opts.Pool)
}

// suppressNonMaxima zeroes every pixel that is not the local maximum
// along its gradient direction, quantized to one of the four principal
// and diagonal directions. The outermost ring has no complete
// neighborhood and is suppressed outright.
func suppressNonMaxima(mag, dir []float64, w, h int, pool *parallel.Pool) []float64 {
	out := make([]float64, w*h)
	if h < 3 || w < 3 {
		return out
	}
	pool.ParallelFor(h-2, func(start, end int) {
		for y := start + 1; y < end+1; y++ {
			for x := 1; x < w-1; x++ {
				i := y*w + x
				m := mag[i]

				// Normalize the angle to [0°, 180°).
				angle := dir[i] * 180 / math.Pi
				if angle < 0 {
					angle += 180
				}

				var a, b float64
				switch {
				case angle < 22.5 || angle >= 157.5: // horizontal gradient
					a, b = mag[i+1], mag[i-1]
				case angle < 67.5: // 45° diagonal
					a, b = mag[i+w+1], mag[i-w-1]
				case angle < 112.5: // vertical gradient
					a, b = mag[i+w], mag[i-w]
				default: // 135° diagonal
					a, b = mag[i+w-1], mag[i-w+1]
				}

				if m >= a && m >= b {
					out[i] = m
				}
			}
		}
	})

	return out
}

// threshold classifies every surviving magnitude into strong, weak, or
// non-edge.
func threshold(mag []float64, low, high float64) []uint8 {
	states := make([]uint8, len(mag))
	for i, m := range mag {
		switch {
		case m >= high:
			states[i] = strongEdge
		case m >= low:
			states[i] = weakEdge
		}
	}

	return states
}

// hysteresis promotes weak pixels reachable from any strong seed via a
// breadth-first traversal under conn, and discards the rest. Runs
// single-threaded: the traversal shares one visited structure.
func hysteresis(states []uint8, w, h int, conn raster.Connectivity) *raster.Image[uint8] {
	out := &raster.Image[uint8]{Width: w, Height: h, Pix: make([]uint8, w*h)}
	offsets := conn.Offsets()

	// Seed the queue with every strong pixel.
	queue := make([]int, 0, w)
	for i, s := range states {
		if s == strongEdge {
			out.Pix[i] = edgeOn
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%w, u/w
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vx >= w || vy < 0 || vy >= h {
				continue
			}
			v := vy*w + vx
			if states[v] == weakEdge && out.Pix[v] == 0 {
				out.Pix[v] = edgeOn
				queue = append(queue, v)
			}
		}
	}

	return out
}
