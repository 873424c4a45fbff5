// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/wavedraw"
	"github.com/ik5/wavedraw/audio"
	"github.com/ik5/wavedraw/preview"
	"github.com/ik5/wavedraw/session"
	"github.com/ik5/wavedraw/synth"
)

func main() {
	var (
		input   = flag.String("in", "", "audio file to load (wav, mp3, ogg, aiff); empty = synthesize")
		preset  = flag.Int("preset", 1, "waveform preset 1-4 when synthesizing")
		kind    = flag.String("kind", "", "synthesize manually: sine, square, triangle or sawtooth")
		freq    = flag.Float64("freq", 440, "frequency in Hz for manual synthesis")
		spc     = flag.Int("spc", 100, "samples per cycle for manual synthesis")
		periods = flag.Int("periods", 10, "number of periods for manual synthesis")
		rate    = flag.Int("rate", 0, "resample the loaded waveform to this rate (0 = keep)")
		outDir  = flag.String("out", "", "directory for exported artifacts (default: named after the input)")
		noPlay  = flag.Bool("no-preview", false, "disable audio preview")
	)
	flag.Parse()

	name, waveform, sampleRate, err := loadWaveform(loadOptions{
		input:   *input,
		preset:  *preset,
		kind:    *kind,
		freq:    *freq,
		spc:     *spc,
		periods: *periods,
		rate:    *rate,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		os.Exit(1)
	}

	var player session.Player
	if !*noPlay {
		p, err := preview.NewPlayer()
		if err != nil {
			fmt.Fprintln(os.Stderr, "preview unavailable:", err)
		} else {
			player = p
		}
	}

	sess, err := session.New(name, waveform, sampleRate, player)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(1)
	}
	defer sess.Close()

	fmt.Printf("%s: %d samples @ %d Hz\n", name, sess.Len(), sampleRate)
	printHelp()

	runLoop(sess)

	dir := *outDir
	if dir == "" {
		dir = name
	}

	err = sess.Export(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}

	fmt.Println("Wrote:", dir)
}

type loadOptions struct {
	input   string
	preset  int
	kind    string
	freq    float64
	spc     int
	periods int
	rate    int
}

func loadWaveform(opts loadOptions) (string, []float64, int, error) {
	if opts.input == "" {
		return synthesize(opts)
	}

	waveform, sampleRate, err := wavedraw.LoadFile(opts.input)
	if err != nil {
		return "", nil, 0, err
	}

	if opts.rate > 0 && opts.rate != sampleRate {
		waveform, err = audio.Resample(waveform, sampleRate, opts.rate)
		if err != nil {
			return "", nil, 0, err
		}

		sampleRate = opts.rate
	}

	name := strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input))

	return name, waveform, sampleRate, nil
}

func synthesize(opts loadOptions) (string, []float64, int, error) {
	var p synth.Params

	if opts.kind == "" {
		var ok bool

		p, ok = synth.Preset(opts.preset)
		if !ok {
			return "", nil, 0, fmt.Errorf("no such preset: %d", opts.preset)
		}
	} else {
		kind, err := parseKind(opts.kind)
		if err != nil {
			return "", nil, 0, err
		}

		p = synth.Params{
			Kind:            kind,
			Frequency:       opts.freq,
			SamplesPerCycle: opts.spc,
			Periods:         opts.periods,
		}
	}

	waveform, sampleRate, err := synth.Generate(p)
	if err != nil {
		return "", nil, 0, err
	}

	return p.Kind.String(), waveform, sampleRate, nil
}

func parseKind(s string) (synth.Kind, error) {
	switch s {
	case "sine":
		return synth.Sine, nil
	case "square":
		return synth.Square, nil
	case "triangle":
		return synth.Triangle, nil
	case "sawtooth":
		return synth.Sawtooth, nil
	default:
		return 0, fmt.Errorf("unknown waveform kind %q", s)
	}
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  d x:y x:y ...   draw a stroke through the given points")
	fmt.Println("  p               preview the current result")
	fmt.Println("  s               stop preview")
	fmt.Println("  u               undo last stroke")
	fmt.Println("  y               redo")
	fmt.Println("  r               reset both envelopes")
	fmt.Println("  q               quit and export")
}

func runLoop(sess *session.Session) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "d":
			err := drawStroke(sess, fields[1:])
			if err != nil {
				fmt.Println("draw:", err)
			}
		case "p":
			err := sess.Preview()
			if err != nil {
				fmt.Println("preview:", err)
			}
		case "s":
			sess.StopPreview()
		case "u":
			fmt.Println(sess.Undo())
		case "y":
			fmt.Println(sess.Redo())
		case "r":
			sess.Reset()
			fmt.Println("reset")
		case "q":
			return
		default:
			printHelp()
		}
	}
}

type point struct {
	x, y float64
}

// drawStroke runs one full pointer gesture through the points given as
// x:y pairs. The whole gesture lands as a single undo step. All points
// are parsed before the gesture starts, and a pointer failure mid-drag
// cancels the stroke, so a bad command line never leaves a gesture
// open.
func drawStroke(sess *session.Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no points given")
	}

	points := make([]point, len(args))
	for i, arg := range args {
		x, y, err := parsePoint(arg)
		if err != nil {
			return err
		}
		points[i] = point{x: x, y: y}
	}

	if err := sess.PointerDown(points[0].x, points[0].y); err != nil {
		return err
	}

	for _, pt := range points[1:] {
		if err := sess.PointerMove(pt.x, pt.y); err != nil {
			sess.CancelStroke()
			return err
		}
	}

	return sess.PointerUp()
}

func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad point %q, want x:y", s)
	}

	x, err = strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad point %q: %w", s, err)
	}

	y, err = strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad point %q: %w", s, err)
	}

	return x, y, nil
}
