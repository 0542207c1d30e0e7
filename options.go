package flowtext

import "github.com/tsawler/flowtext/layout"

// engineOptions holds configuration for an Engine.
type engineOptions struct {
	// Fixed padding on all four sides of every frame, in points.
	framePadding float64
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		framePadding: layout.DefaultConfig().FramePadding,
	}
}

// layoutConfig converts engine options into the layout configuration shared
// by the calculator, estimator, and coordinator.
func (o engineOptions) layoutConfig() layout.Config {
	return layout.Config{
		FramePadding: o.framePadding,
	}
}
