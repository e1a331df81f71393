// Command smoothwav runs a smoothing filter over every channel of a WAV
// file and writes the result, an offline demonstration of the streaming
// filter chain.
//
// Usage:
//
//	smoothwav -in noisy.wav -out clean.wav [flags]
//
// Examples:
//
//	smoothwav -in take.wav -out take-smooth.wav -filter gaussian -window 16
//	smoothwav -in take.wav -out take-smooth.wav -filter ema -alpha 0.15
//	smoothwav -in take.wav -out take-smooth.wav -filter median -window 5
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-smooth/smooth/filter"
	"github.com/cwbudde/algo-smooth/smooth/smoother"
)

func main() {
	inPath := flag.String("in", "", "input WAV file")
	outPath := flag.String("out", "", "output WAV file")
	filterName := flag.String("filter", "simple", "filter: simple|weighted|gaussian|median|ema")
	window := flag.Int("window", 8, "window size for the windowed filters")
	alpha := flag.Float64("alpha", 0.2, "smoothing factor for the ema filter")
	stdDev := flag.Float64("std", 0, "gaussian std dev in samples (0 = window/3)")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*inPath, *outPath, *filterName, *window, *alpha, *stdDev); err != nil {
		log.Fatalln("smoothwav:", err)
	}
}

func run(inPath, outPath, filterName string, window int, alpha, stdDev float64) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}
	if dec.BitDepth != 16 {
		return fmt.Errorf("only 16-bit PCM is supported, got %d-bit", dec.BitDepth)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return fmt.Errorf("no channels in %s", inPath)
	}

	fmt.Printf("smoothing %s: %d Hz, %d channel(s), %d frames, filter %s\n",
		inPath, buf.Format.SampleRate, channels, len(buf.Data)/channels, filterName)

	if err := smoothChannels(buf, channels, filterName, window, alpha, stdDev); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := wav.NewEncoder(out, buf.Format.SampleRate, int(dec.BitDepth), channels, int(dec.WavAudioFormat))
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}

	return enc.Close()
}

// smoothChannels runs one independent smoother per channel over the
// interleaved sample data, in place.
func smoothChannels(buf *audio.IntBuffer, channels int, filterName string, window int, alpha, stdDev float64) error {
	smoothers := make([]*smoother.Smoother1D, channels)
	for ch := range smoothers {
		f, err := newChannelFilter(filterName, window, alpha, stdDev)
		if err != nil {
			return err
		}
		s, err := smoother.New1D(f)
		if err != nil {
			return err
		}
		smoothers[ch] = s
	}

	for i, v := range buf.Data {
		smoothed := smoothers[i%channels].AddAndGet(float64(v))
		buf.Data[i] = clampInt16(math.Round(smoothed))
	}

	return nil
}

func newChannelFilter(name string, window int, alpha, stdDev float64) (filter.Filter1D, error) {
	switch name {
	case "simple":
		return filter.NewSimpleMovingAverage1D(window)
	case "weighted":
		return filter.NewWeightedMovingAverage1D(window)
	case "gaussian":
		if stdDev == 0 {
			stdDev = float64(window) / 3
		}
		return filter.NewGaussianAverage1D(window, stdDev)
	case "median":
		return filter.NewMedianAverage1D(window)
	case "ema":
		return filter.NewExponentialMovingAverage1D(alpha)
	default:
		return nil, fmt.Errorf("unknown filter %q", name)
	}
}

func clampInt16(v float64) int {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int(v)
}
