/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command uricorpus writes the seed corpus of the URI fuzz targets.
//
// Each seed is written once per work-set (parse, resolve, relativize) to a
// file named after the SHA-256 digest of its content:
//
//	uricorpus -out corpus
//	uricorpus -format gofuzz -out uri/testdata/fuzz
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jplu/uriref/internal/corpus"
)

const errorStatusCode = 1

// config is the content of the optional configuration file.
type config struct {
	Out      string   `yaml:"out"`
	Format   string   `yaml:"format"`
	Worksets []string `yaml:"worksets"`
	Extra    []string `yaml:"extra"` // appended to the built-in seeds
}

func defaultConfig() config {
	return config{
		Out:      "corpus",
		Format:   string(corpus.FormatRaw),
		Worksets: corpus.Worksets(),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := _main(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func _main(ctx context.Context, args []string, outW, errW io.Writer) int {
	flags := flag.NewFlagSet("uricorpus", flag.ContinueOnError)
	flags.SetOutput(errW)
	var (
		out        = flags.String("out", "", "corpus root directory (default \"corpus\")")
		format     = flags.String("format", "", "file format: raw or gofuzz (default \"raw\")")
		configFile = flags.String("config", "", "YAML configuration file")
		verbose    = flags.Bool("v", false, "log every written file")
	)
	if err := flags.Parse(args[1:]); err != nil {
		return errorStatusCode
	}

	cfg := defaultConfig()
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			fmt.Fprintln(errW, err)
			return errorStatusCode
		}
	}
	if *out != "" {
		cfg.Out = *out
	}
	if *format != "" {
		cfg.Format = *format
	}

	lg := newLogger(outW, *verbose)
	defer func() { _ = lg.Sync() }()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Error("Failed to write corpus", zap.Error(err))
		return errorStatusCode
	}
	return 0
}

func run(ctx context.Context, cfg config, lg *zap.Logger) error {
	if cfg.Out == "" {
		return errors.New("empty output directory")
	}
	if len(cfg.Worksets) == 0 {
		return errors.New("no work-set to write")
	}
	f, err := corpus.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	for _, workset := range cfg.Worksets {
		if !slices.Contains(corpus.Worksets(), workset) {
			return errors.Errorf("unknown work-set %q", workset)
		}
	}

	seeds := append(corpus.Seeds(), cfg.Extra...)
	w := &corpus.Writer{Dir: cfg.Out, Format: f, Logger: lg}
	if err := w.Write(ctx, cfg.Worksets, seeds); err != nil {
		return errors.Wrap(err, "write")
	}
	lg.Info("Corpus written",
		zap.String("dir", cfg.Out),
		zap.String("format", cfg.Format),
		zap.Strings("worksets", cfg.Worksets),
		zap.Int("seeds", len(seeds)),
	)
	return nil
}

func loadConfig(name string, cfg *config) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "parse config")
	}
	return nil
}

// newLogger returns a JSON logger writing to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
