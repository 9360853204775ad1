// Command msssim scores images against a reference with MS-SSIM.
//
// Usage:
//
//	msssim [options] <reference> <distorted>...
//	msssim [options] -pairs pairs.csv
//
// One "distorted<TAB>score" line is printed per comparison. Complex scores
// never occur for decoded images, so only the real part is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FlavioCFOliveira/GoSSIM/internal/imageio"
	"github.com/FlavioCFOliveira/GoSSIM/internal/loss"
	"github.com/FlavioCFOliveira/GoSSIM/internal/metric"
	"github.com/FlavioCFOliveira/GoSSIM/internal/report"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("msssim: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// config holds the parsed command line.
type config struct {
	opts      metric.Options
	metric    string
	mode      imageio.ColorMode
	resize    bool
	csvPath   string
	appendCSV bool
	pairs     []report.Pair
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("msssim", flag.ContinueOnError)
	kernelSize := fs.Int("kernel", 11, "Gaussian kernel side, odd")
	sigma := fs.Float64("sigma", 1.5, "Gaussian kernel standard deviation")
	k1 := fs.Float64("k1", 0.01, "luminance stabiliser")
	k2 := fs.Float64("k2", 0.03, "contrast stabiliser")
	weights := fs.String("weights", formatWeights(metric.DefaultScaleWeights()), "comma separated scale weights, finest first")
	gray := fs.Bool("gray", false, "compare luminance only")
	resize := fs.Bool("resize", false, "resize distorted images to the reference size")
	which := fs.String("metric", "msssim", "score to print: msssim, ssim or loss")
	csvPath := fs.String("csv", "", "also write results to this CSV file")
	appendCSV := fs.Bool("append", false, "append to the CSV file instead of truncating it")
	pairsPath := fs.String("pairs", "", "CSV file of reference,distorted pairs with a header row")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  msssim [options] <reference> <distorted>...\n  msssim [options] -pairs pairs.csv\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	w, err := parseWeights(*weights)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		opts:      metric.DefaultOptions(),
		metric:    *which,
		resize:    *resize,
		csvPath:   *csvPath,
		appendCSV: *appendCSV,
	}
	cfg.opts.KernelSize = *kernelSize
	cfg.opts.KernelSigma = *sigma
	cfg.opts.K1 = *k1
	cfg.opts.K2 = *k2
	cfg.opts.ScaleWeights = w
	cfg.opts.DataRange = imageio.DataRange
	if *gray {
		cfg.mode = imageio.ColorGray
	}

	switch cfg.metric {
	case "msssim", "ssim", "loss":
	default:
		return nil, fmt.Errorf("unknown metric %q, expected msssim, ssim or loss", cfg.metric)
	}
	if err := cfg.opts.Validate(); err != nil {
		return nil, err
	}

	if *pairsPath != "" {
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("-pairs cannot be combined with positional images")
		}
		if cfg.pairs, err = report.LoadPairs(*pairsPath, true); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return nil, fmt.Errorf("need a reference and at least one distorted image")
	}
	ref := fs.Arg(0)
	for _, d := range fs.Args()[1:] {
		cfg.pairs = append(cfg.pairs, report.Pair{Reference: ref, Distorted: d})
	}
	return cfg, nil
}

func parseWeights(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	w := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scale weight %q: %w", f, err)
		}
		w = append(w, v)
	}
	return w, nil
}

func formatWeights(w []float64) string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	var csvw *report.CSVWriter
	if cfg.csvPath != "" {
		csvw = report.NewCSVWriter(cfg.csvPath, cfg.appendCSV)
		if err := csvw.Begin(); err != nil {
			return err
		}
		defer csvw.Close()
	}

	score, err := scorer(cfg)
	if err != nil {
		return err
	}

	refs := make(map[string]*tensor.Tensor)
	for _, p := range cfg.pairs {
		ref, ok := refs[p.Reference]
		if !ok {
			if ref, err = imageio.LoadTensor(p.Reference, cfg.mode, 0, 0); err != nil {
				return err
			}
			refs[p.Reference] = ref
		}

		width, height := 0, 0
		if cfg.resize {
			width, height = ref.Dim(3), ref.Dim(2)
		}
		dist, err := imageio.LoadTensor(p.Distorted, cfg.mode, width, height)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := score(ref, dist)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Distorted, err)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(stdout, "%s\t%.6f\n", p.Distorted, res.Value())
		if csvw != nil {
			row := report.Row{
				Reference: p.Reference,
				Distorted: p.Distorted,
				Metric:    cfg.metric,
				Score:     res.At(0),
				Elapsed:   elapsed,
			}
			if err := csvw.Write(row); err != nil {
				return err
			}
		}
	}

	if csvw != nil {
		return csvw.Close()
	}
	return nil
}

type scoreFunc func(ref, dist *tensor.Tensor) (*metric.Result, error)

func scorer(cfg *config) (scoreFunc, error) {
	switch cfg.metric {
	case "ssim":
		return func(ref, dist *tensor.Tensor) (*metric.Result, error) {
			return metric.SSIM(ref, dist, cfg.opts)
		}, nil
	case "loss":
		l, err := loss.NewMultiScaleSSIMLoss(cfg.opts)
		if err != nil {
			return nil, err
		}
		return l.Forward, nil
	}
	return func(ref, dist *tensor.Tensor) (*metric.Result, error) {
		return metric.MultiScaleSSIM(ref, dist, cfg.opts)
	}, nil
}
