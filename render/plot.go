// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ik5/wavedraw/envelope"
)

// wide, short canvas so long waveforms stay readable
const (
	plotWidth  = 16 * vg.Inch
	plotHeight = 3 * vg.Inch
)

func newCanvas(s Scheme, n int, limit float64) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = s.Background

	p.X.LineStyle.Color = gray
	p.Y.LineStyle.Color = gray
	p.X.Tick.LineStyle.Color = gray
	p.Y.Tick.LineStyle.Color = gray
	p.X.Tick.Label.Color = gray
	p.Y.Tick.Label.Color = gray

	p.X.Min, p.X.Max = 0, float64(n)
	p.Y.Min, p.Y.Max = -limit, limit

	p.Legend.Top = true
	p.Legend.TextStyle.Color = gray

	return p
}

// amplitudeLimit is the plot's vertical bound: the peak magnitude plus
// a 10% margin, or 1.1 for an all-zero series.
func amplitudeLimit(series ...[]float64) float64 {
	peak := 0.0
	for _, w := range series {
		for _, v := range w {
			if v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
	}
	if peak == 0 {
		peak = 1
	}
	return peak * 1.1
}

func toXYs(w []float64) plotter.XYs {
	xys := make(plotter.XYs, len(w))
	for i, v := range w {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	return xys
}

func newLine(xys plotter.XYs, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	return line, nil
}

// faint returns c with most of its opacity removed, for the backdrop
// copy of the original waveform.
func faint(c color.Color) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = 0x26 // ~15%
	return nrgba
}

// EnvelopePlot renders the drawing canvas: the original waveform as a
// faint backdrop with the two envelope curves on top.
func EnvelopePlot(w []float64, snap envelope.Snapshot, s Scheme) (*plot.Plot, error) {
	p := newCanvas(s, len(w), amplitudeLimit(w, snap.Positive, snap.Negative))

	backdrop, err := newLine(toXYs(w), faint(s.Positive))
	if err != nil {
		return nil, err
	}
	backdrop.LineStyle.Width = vg.Points(1)
	p.Add(backdrop)

	pos, err := newLine(toXYs(snap.Positive), s.Positive)
	if err != nil {
		return nil, err
	}
	neg, err := newLine(toXYs(snap.Negative), s.Negative)
	if err != nil {
		return nil, err
	}

	p.Add(pos, neg)
	p.Legend.Add("Positive", pos)
	p.Legend.Add("Negative", neg)

	return p, nil
}

// SignPlot renders a waveform with strict two-color sign coloring: one
// polyline per single-signed run, split exactly at the interpolated
// zero crossings so neither color bleeds past the axis.
func SignPlot(w []float64, s Scheme) (*plot.Plot, error) {
	p := newCanvas(s, len(w), amplitudeLimit(w))

	var legendPos, legendNeg *plotter.Line

	segments := Subdivide(w)
	for start := 0; start < len(segments); {
		// extend the run while the sign holds
		end := start + 1
		for end < len(segments) && segments[end].Sign == segments[start].Sign {
			end++
		}

		xys := make(plotter.XYs, 0, end-start+1)
		xys = append(xys, plotter.XY{X: segments[start].X0, Y: segments[start].Y0})
		for _, seg := range segments[start:end] {
			xys = append(xys, plotter.XY{X: seg.X1, Y: seg.Y1})
		}

		c := s.Negative
		if segments[start].Sign == SignPositive {
			c = s.Positive
		}
		line, err := newLine(xys, c)
		if err != nil {
			return nil, err
		}
		p.Add(line)

		if segments[start].Sign == SignPositive && legendPos == nil {
			legendPos = line
		}
		if segments[start].Sign == SignNegative && legendNeg == nil {
			legendNeg = line
		}

		start = end
	}

	if legendPos != nil {
		p.Legend.Add("Positive", legendPos)
	}
	if legendNeg != nil {
		p.Legend.Add("Negative", legendNeg)
	}

	return p, nil
}

// ComparisonPlot renders the original and modified waveforms on one
// canvas. The scheme's Negative color is used for the original wave,
// the Positive for the modified one.
func ComparisonPlot(original, modified []float64, s Scheme) (*plot.Plot, error) {
	p := newCanvas(s, len(original), amplitudeLimit(original, modified))

	orig, err := newLine(toXYs(original), s.Negative)
	if err != nil {
		return nil, err
	}
	mod, err := newLine(toXYs(modified), s.Positive)
	if err != nil {
		return nil, err
	}

	p.Add(orig, mod)
	p.Legend.Add("Original Wave", orig)
	p.Legend.Add("Modified Wave", mod)

	return p, nil
}

// SavePNG writes a plot as a PNG on the 16x3 inch canvas.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
