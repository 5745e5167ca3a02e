package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessPaths_Golden(t *testing.T) {
	results, err := ProcessPaths(context.Background(), []string{filepath.Join("testdata", "sample.c")}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	want, err := os.ReadFile(filepath.Join("testdata", "sample_expected.c"))
	require.NoError(t, err)

	normalize := func(s string) string {
		return strings.ReplaceAll(s, "\r\n", "\n")
	}

	require.Equal(t, normalize(string(want)), normalize(results[0].Output))
}
