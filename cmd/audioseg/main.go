// Command audioseg splits an audio file at detected onsets and exports the
// segments as WAV files.
//
// Usage:
//
//	audioseg [flags] <audio-file>
//
// Flag defaults can be provided through a .env file or environment
// variables (AUDIOSEG_OUT, AUDIOSEG_PREFIX, AUDIOSEG_MIN_LENGTH).
//
// Examples:
//
//	audioseg drums.wav
//	audioseg -out takes -prefix take -min 0.25 session.mp3
//	audioseg -metadata
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/cwbudde/algo-audionodes/asset"
	"github.com/cwbudde/algo-audionodes/graph"
	"github.com/cwbudde/algo-audionodes/nodes/segmentation"

	_ "github.com/cwbudde/algo-audionodes/nodes/analysis"
	_ "github.com/cwbudde/algo-audionodes/nodes/synthesis"
	_ "github.com/cwbudde/algo-audionodes/nodes/transform"
)

func main() {
	// .env is optional; explicit environment variables win either way.
	_ = godotenv.Load()

	out := flag.String("out", envOr("AUDIOSEG_OUT", "segments"), "output directory for segment WAV files")
	prefix := flag.String("prefix", envOr("AUDIOSEG_PREFIX", "segment"), "file name prefix for exported segments")
	minLength := flag.Float64("min", envFloatOr("AUDIOSEG_MIN_LENGTH", 0.1), "minimum segment length in seconds")
	fftSize := flag.Int("fft", 2048, "FFT size for onset analysis")
	hopLength := flag.Int("hop", 512, "hop length for onset analysis")
	metadata := flag.Bool("metadata", false, "print the node catalog as JSON and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: audioseg [flags] <audio-file>\n\n")
		fmt.Fprintf(os.Stderr, "Splits an audio file at detected onsets and exports WAV segments.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *metadata {
		data, err := graph.MetadataJSON()
		if err != nil {
			fail("rendering metadata: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fail("reading %s: %v", path, err)
	}

	ctx := context.Background()
	ec := asset.NewContext(asset.NewStore())
	audio := graph.AudioRef{Data: data}

	detect := segmentation.NewDetectOnsets(audio)
	detect.FFTSize = *fftSize
	detect.HopLength = *hopLength
	onsets, err := detect.Process(ctx, ec)
	if err != nil {
		fail("detecting onsets: %v", err)
	}
	fmt.Printf("%d onsets detected\n", onsets.Len())

	segment := segmentation.NewSegmentAudioByOnsets(audio, onsets)
	segment.MinSegmentLength = *minLength
	refs, err := segment.Process(ctx, ec)
	if err != nil {
		fail("segmenting: %v", err)
	}
	if len(refs) == 0 {
		fmt.Println("no segments to export")
		return
	}

	folder := graph.FolderRef{URI: *out}
	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(refs)),
		mpb.PrependDecorators(
			decor.Name("Exporting: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	for i, ref := range refs {
		name := fmt.Sprintf("%s_%d.wav", *prefix, i)
		if _, err := ec.SaveAudio(ctx, ref, folder, name); err != nil {
			fail("saving %s: %v", name, err)
		}
		bar.Increment()
	}
	p.Wait()

	fmt.Printf("%d segments written to %s\n", len(refs), *out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
