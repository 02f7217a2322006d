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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/jplu/uriref/internal/corpus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMainWritesCorpus(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := _main(context.Background(), []string{"uricorpus", "-out", dir, "-v"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "Corpus written")
	require.Contains(t, stdout.String(), "Wrote seed")

	for _, workset := range corpus.Worksets() {
		entries, err := os.ReadDir(filepath.Join(dir, workset))
		require.NoError(t, err)
		require.Len(t, entries, len(corpus.Seeds()))
	}
}

func TestMainConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "uricorpus.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
out: from-config
format: gofuzz
worksets: [parse]
extra:
  - "http://example.com/extra"
`), 0o600))

	out := filepath.Join(dir, "out")
	var stdout, stderr bytes.Buffer
	code := _main(context.Background(), []string{"uricorpus", "-config", cfgFile, "-out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	entries, err := os.ReadDir(filepath.Join(out, "FuzzParse"))
	require.NoError(t, err)
	require.Len(t, entries, len(corpus.Seeds())+1)

	_, err = os.Stat(filepath.Join(out, "FuzzParse", corpus.Name("http://example.com/extra")))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-config"))
	require.True(t, os.IsNotExist(err), "flags override the config file")
}

func TestMainErrors(t *testing.T) {
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badConfig, []byte("worksets: {a: 1}\n"), 0o600))
	truncatedConfig := filepath.Join(dir, "truncated.yml")
	require.NoError(t, os.WriteFile(truncatedConfig, []byte("worksets: [\n"), 0o600))
	emptyConfig := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(emptyConfig, []byte("out: \"\"\nformat: \"\"\nworksets: []\n"), 0o600))

	for _, tt := range []struct {
		name string
		args []string
	}{
		{"UnknownFlag", []string{"-unknown"}},
		{"UnknownFormat", []string{"-out", dir, "-format", "json"}},
		{"MissingConfig", []string{"-config", filepath.Join(dir, "missing.yml")}},
		{"InvalidConfig", []string{"-config", badConfig}},
		{"TruncatedConfig", []string{"-config", truncatedConfig, "-out", dir}},
		{"EmptyConfig", []string{"-config", emptyConfig}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := _main(context.Background(), append([]string{"uricorpus"}, tt.args...), &stdout, &stderr)
			require.Equal(t, errorStatusCode, code, stdout.String())
		})
	}
}

func TestRunUnknownWorkset(t *testing.T) {
	cfg := defaultConfig()
	cfg.Out = t.TempDir()
	cfg.Worksets = []string{"normalize"}
	require.ErrorContains(t, run(context.Background(), cfg, zaptest.NewLogger(t)), "unknown work-set")
}

func TestRunIncompleteConfig(t *testing.T) {
	lg := zaptest.NewLogger(t)

	cfg := defaultConfig()
	cfg.Out = ""
	require.ErrorContains(t, run(context.Background(), cfg, lg), "empty output directory")

	cfg = defaultConfig()
	cfg.Out = t.TempDir()
	cfg.Worksets = nil
	require.ErrorContains(t, run(context.Background(), cfg, lg), "no work-set")

	cfg = defaultConfig()
	cfg.Out = t.TempDir()
	cfg.Format = ""
	require.ErrorContains(t, run(context.Background(), cfg, lg), "unknown corpus format")
}
