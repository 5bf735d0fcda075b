// Command quakeinfo prints ground-motion measures for an acceleration
// record.
//
// Usage:
//
//	quakeinfo [flags] [file]
//
// The record is read from the named file, or from stdin when no file is
// given, one sample per line. Blank lines and lines starting with '#' are
// skipped.
//
// Examples:
//
//	quakeinfo -rate 200 -unit gal record.txt
//	quakeinfo -rate 100 -response record.txt
//	quakeinfo -demo
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-quake/dsp/core"
	"github.com/cwbudde/algo-quake/dsp/signal"
	"github.com/cwbudde/algo-quake/dsp/unit"
	"github.com/cwbudde/algo-quake/dsp/window"
	"github.com/cwbudde/algo-quake/measure/response"
	"github.com/cwbudde/algo-quake/measure/strongmotion"
)

func main() {
	rate := flag.Float64("rate", 200, "sample rate in Hz")
	unitName := flag.String("unit", "gal", "input unit: m/s2, gal, g")
	windowName := flag.String("window", "hann", "spectral window: rectangular, hann, hamming, blackman")
	peakMin := flag.Float64("peakmin", 0.1, "lower bound of the dominant-frequency search in Hz")
	withResponse := flag.Bool("response", false, "compute the SDOF response spectrum")
	demo := flag.Bool("demo", false, "analyze a synthetic decaying 2 Hz record instead of reading input")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quakeinfo [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Prints ground-motion measures for an acceleration record read from\n")
		fmt.Fprintf(os.Stderr, "the named file or stdin, one sample per line.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quakeinfo -rate 200 -unit gal record.txt\n")
		fmt.Fprintf(os.Stderr, "  quakeinfo -rate 100 -response record.txt\n")
		fmt.Fprintf(os.Stderr, "  quakeinfo -demo\n")
	}
	flag.Parse()

	u, err := unit.Parse(*unitName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	win, err := parseWindow(*windowName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var samples []float64
	switch {
	case *demo:
		samples, err = demoRecord(*rate)
	case flag.NArg() > 0:
		samples, err = readSamplesFile(flag.Arg(0))
	default:
		samples, err = readSamples(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []strongmotion.Option{
		strongmotion.WithWindow(win),
		strongmotion.WithPeakMinFrequency(*peakMin),
	}
	if *withResponse {
		opts = append(opts, strongmotion.WithResponseSpectrum(response.DefaultConfig()))
	}

	a, err := strongmotion.Analyze(samples, *rate, u, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(a)
	if a.Response != nil {
		fmt.Println()
		printResponse(a.Response)
	}
}

func parseWindow(name string) (window.Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect":
		return window.TypeRectangular, nil
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	}
	return 0, fmt.Errorf("unknown window %q", name)
}

func demoRecord(rate float64) ([]float64, error) {
	g := signal.NewGenerator(core.WithSampleRate(rate))
	return g.DecayingSine(2, 100, 0.3, int(20*rate))
}

func readSamplesFile(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSamples(f)
}

func readSamples(r io.Reader) ([]float64, error) {
	var samples []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func printSummary(a strongmotion.Analysis) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\t%d\n", a.Stats.Count)
	fmt.Fprintf(tw, "Duration\t%.2f s\n", a.Duration)
	fmt.Fprintf(tw, "PGA\t%.4f m/s²\n", a.PGA)
	fmt.Fprintf(tw, "PGV\t%.4f m/s\n", a.PGV)
	fmt.Fprintf(tw, "PGD\t%.4f m\n", a.PGD)
	fmt.Fprintf(tw, "Arias intensity\t%.4f m/s\n", a.AriasIntensity)
	fmt.Fprintf(tw, "Significant duration\t%.2f s\n", a.SignificantDuration)
	fmt.Fprintf(tw, "CAV\t%.4f m/s\n", a.CAV)
	if a.DominantFrequency.Found() {
		fmt.Fprintf(tw, "Dominant frequency\t%.2f Hz\n", a.DominantFrequency.Frequency)
	} else {
		fmt.Fprintf(tw, "Dominant frequency\tnone\n")
	}
	fmt.Fprintf(tw, "Mean period\t%.3f s\n", a.Spectral.MeanPeriod)
	fmt.Fprintf(tw, "RMS\t%.4f m/s²\n", a.Stats.RMS)
	fmt.Fprintf(tw, "Mean\t%.4g m/s²\n", a.Stats.Mean)
	fmt.Fprintf(tw, "Std dev\t%.4f m/s²\n", a.Stats.StdDev)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(r *response.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period [s]")
	for _, zeta := range r.Dampings {
		fmt.Fprintf(tw, "\tSa %.0f%% [m/s²]", zeta*100)
	}
	fmt.Fprintf(tw, "\n")

	for pi, period := range r.Periods {
		fmt.Fprintf(tw, "%.4f", period)
		for di := range r.Dampings {
			fmt.Fprintf(tw, "\t%.4f", r.Acceleration[di][pi])
		}
		fmt.Fprintf(tw, "\n")
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
