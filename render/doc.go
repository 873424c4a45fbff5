// SPDX-License-Identifier: EPL-2.0

// Package render turns waveforms and envelope snapshots into plots.
//
// The interesting part is strict sign subdivision: before a waveform is
// drawn in two colors, Subdivide splits it into segments at the exact
// interpolated zero crossings so that every segment carries one sign.
// Rendering each segment in its sign's color then guarantees no color
// ever bleeds across the axis, no matter how the plotting backend
// joins line points.
//
// Subdivision is recomputed on demand from the sample data it is given;
// nothing is cached across waveform changes.
//
// The three image builders (EnvelopePlot, SignPlot, ComparisonPlot)
// produce gonum/plot plots sharing one canvas layout and the default
// palettes; SavePNG writes them to disk.
package render
