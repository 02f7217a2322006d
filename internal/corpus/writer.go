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

package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Format is the on-disk encoding of a corpus entry.
type Format string

const (
	// FormatRaw writes the seed bytes as is, in <dir>/<workset>/<name>.
	FormatRaw Format = "raw"
	// FormatGoFuzz writes the seed in the Go native fuzzing corpus encoding,
	// in <dir>/Fuzz<Workset>/<name>, so that dir can be a testdata/fuzz
	// directory.
	FormatGoFuzz Format = "gofuzz"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatRaw, FormatGoFuzz:
		return f, nil
	default:
		return "", errors.Errorf("unknown corpus format %q", s)
	}
}

// Writer writes seeds as content-addressed files.
type Writer struct {
	// Dir is the root directory of the corpus.
	Dir string
	// Format is the file encoding. Defaults to FormatRaw.
	Format Format
	// Logger is used for progress. Defaults to a no-op logger.
	Logger *zap.Logger
}

var nopLogger = zap.NewNop()

func (w *Writer) logger() *zap.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return nopLogger
}

// Write writes every seed into each work-set directory. Work-sets are
// written concurrently; the first error cancels the others.
func (w *Writer) Write(ctx context.Context, worksets, seeds []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, workset := range worksets {
		g.Go(func() error {
			return w.writeWorkset(ctx, workset, seeds)
		})
	}
	return g.Wait()
}

func (w *Writer) writeWorkset(ctx context.Context, workset string, seeds []string) error {
	dir := filepath.Join(w.Dir, w.dirName(workset))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "create %s", workset)
	}

	lg := w.logger().With(zap.String("workset", workset))
	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := filepath.Join(dir, Name(seed))
		if err := os.WriteFile(name, w.encode(seed), 0o600); err != nil {
			return errors.Wrapf(err, "write %s", workset)
		}
		lg.Debug("Wrote seed", zap.String("file", name), zap.Int("size", len(seed)))
	}
	lg.Info("Work-set written", zap.String("dir", dir), zap.Int("seeds", len(seeds)))
	return nil
}

// dirName returns the directory of workset: its name for raw corpora, the
// fuzz target name ("parse" gives "FuzzParse") for Go corpora.
func (w *Writer) dirName(workset string) string {
	if w.Format != FormatGoFuzz || workset == "" {
		return workset
	}
	return "Fuzz" + strings.ToUpper(workset[:1]) + workset[1:]
}

func (w *Writer) encode(seed string) []byte {
	if w.Format == FormatGoFuzz {
		return []byte(fmt.Sprintf("go test fuzz v1\n[]byte(%q)\n", seed))
	}
	return []byte(seed)
}
