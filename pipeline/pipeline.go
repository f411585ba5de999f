// Package pipeline chains pixkit operations into a named, observable
// sequence. Each stage is a pure buffer-to-buffer function; Run executes
// them in order, logging per-stage timing and dimensions through logrus,
// and stops at the first failing stage.
//
//	p := pipeline.New[uint8](logger).
//		Add("blur", func(img *raster.Image[uint8]) (*raster.Image[uint8], error) {
//			k, _ := convolve.Gaussian(5, 1.4)
//			return convolve.Convolve(img, k, raster.Extend(), nil)
//		}).
//		Add("edges", func(img *raster.Image[uint8]) (*raster.Image[uint8], error) {
//			return edges.Detect(img, edges.DefaultOptions())
//		})
//	out, err := p.Run(img)
//
// The pipeline itself adds no semantics: running the stages by hand
// yields the same buffers.
package pipeline

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pixkit/raster"
)

// StageFunc is one pure transformation step.
type StageFunc[T raster.Channel] func(*raster.Image[T]) (*raster.Image[T], error)

// stage pairs a StageFunc with its log name.
type stage[T raster.Channel] struct {
	name string
	fn   StageFunc[T]
}

// Pipeline is an ordered list of stages over one channel type.
type Pipeline[T raster.Channel] struct {
	stages []stage[T]
	log    *logrus.Logger
}

// New returns an empty pipeline logging to logger; a nil logger falls
// back to the logrus standard logger.
func New[T raster.Channel](logger *logrus.Logger) *Pipeline[T] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Pipeline[T]{log: logger}
}

// Add appends a named stage and returns the pipeline for chaining.
func (p *Pipeline[T]) Add(name string, fn StageFunc[T]) *Pipeline[T] {
	p.stages = append(p.stages, stage[T]{name: name, fn: fn})

	return p
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}

// Run executes the stages in order on img, returning the final buffer.
// The input is never mutated. On a stage failure Run aborts and wraps the
// error with the stage name; no partial result is returned.
func (p *Pipeline[T]) Run(img *raster.Image[T]) (*raster.Image[T], error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	cur := img
	for _, st := range p.stages {
		begin := time.Now()
		next, err := st.fn(cur)
		if err != nil {
			p.log.WithFields(logrus.Fields{
				"stage": st.name,
				"took":  time.Since(begin),
			}).WithError(err).Error("pipeline stage failed")

			return nil, fmt.Errorf("pipeline: stage %q: %w", st.name, err)
		}
		p.log.WithFields(logrus.Fields{
			"stage":  st.name,
			"took":   time.Since(begin),
			"width":  next.Width,
			"height": next.Height,
		}).Debug("pipeline stage complete")
		cur = next
	}

	return cur, nil
}
