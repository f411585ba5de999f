// Package edges implements a Canny-style edge detection pipeline over
// pixkit buffers.
//
// Detect runs the classic stages in order:
//
//  1. Optional Gaussian pre-smoothing (Options.Blur).
//  2. Horizontal and vertical Sobel gradients via the convolution engine,
//     yielding per-pixel magnitude and direction.
//  3. Non-maximum suppression: a pixel survives only when its magnitude is
//     the local maximum along its gradient direction, quantized to the
//     four principal/diagonal directions.
//  4. Double thresholding: magnitude ≥ High → strong, [Low, High) → weak,
//     below Low → non-edge.
//  5. Hysteresis: a breadth-first traversal from every strong seed
//     promotes reachable weak pixels; unreached weak pixels are discarded.
//
// The result is a binary uint8 buffer: 255 for confirmed edges, 0
// otherwise.
//
//	out, err := edges.Detect(img, edges.DefaultOptions())
//
// Hysteresis connectivity is caller-configurable (Options.Conn); the
// default follows the Canny convention of 8-connected tracking.
package edges
