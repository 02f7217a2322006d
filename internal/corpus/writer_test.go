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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("raw")
	require.NoError(t, err)
	require.Equal(t, FormatRaw, f)

	f, err = ParseFormat("gofuzz")
	require.NoError(t, err)
	require.Equal(t, FormatGoFuzz, f)

	_, err = ParseFormat("json")
	require.Error(t, err)
}

func TestWriterRaw(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir, Logger: zaptest.NewLogger(t)}
	seeds := []string{"", "http://a/b/c/d;p?q", "#\x00"}

	require.NoError(t, w.Write(context.Background(), Worksets(), seeds))

	for _, workset := range Worksets() {
		entries, err := os.ReadDir(filepath.Join(dir, workset))
		require.NoError(t, err)
		require.Len(t, entries, len(seeds))

		for _, seed := range seeds {
			data, err := os.ReadFile(filepath.Join(dir, workset, Name(seed)))
			require.NoError(t, err)
			require.Equal(t, seed, string(data))
		}
	}
}

func TestWriterGoFuzz(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir, Format: FormatGoFuzz, Logger: zaptest.NewLogger(t)}

	require.NoError(t, w.Write(context.Background(), []string{Parse}, []string{"a\"b\n"}))

	data, err := os.ReadFile(filepath.Join(dir, "FuzzParse", Name("a\"b\n")))
	require.NoError(t, err)
	require.Equal(t, "go test fuzz v1\n[]byte(\"a\\\"b\\n\")\n", string(data))
}

func TestWriterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &Writer{Dir: t.TempDir()}
	require.ErrorIs(t, w.Write(ctx, Worksets(), Seeds()), context.Canceled)
}

func TestWriterError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	w := &Writer{Dir: file}
	require.Error(t, w.Write(context.Background(), Worksets(), Seeds()))
}
