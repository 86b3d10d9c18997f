package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, FileName, "type: scseguid\ntable: iupac\nmin_rotation: booth\nthreads: 4\nheader: true\n")
	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Settings{Type: "scseguid", Table: "iupac", MinRotation: "booth", Threads: 4, Header: true}, *s)
}

func TestLoadEmptyFile(t *testing.T) {
	s, err := Load(writeFile(t, FileName, ""))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, *s)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, FileName, "tpye: slseguid\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tpye")
}

func TestLoadRejectsNegativeThreads(t *testing.T) {
	_, err := Load(writeFile(t, FileName, "threads: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads")
}

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	s, err := FromEnv(env(map[string]string{
		"SEGUID_TYPE":         "dlseguid",
		"SEGUID_TABLE":        " rna ",
		"SEGUID_MIN_ROTATION": "booth",
		"SEGUID_OUTPUT":       "jsonl",
		"SEGUID_THREADS":      "2",
		"SEGUID_HEADER":       "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Type: "dlseguid", Table: "rna", MinRotation: "booth", Output: "jsonl",
		Threads: 2, Header: true,
	}, s)
}

func TestFromEnvErrors(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"SEGUID_THREADS": "many"}))
	assert.ErrorContains(t, err, "SEGUID_THREADS")

	_, err = FromEnv(env(map[string]string{"SEGUID_HEADER": "maybe"}))
	assert.ErrorContains(t, err, "SEGUID_HEADER")
}

func TestMerge(t *testing.T) {
	base := Settings{Type: "seguid", Table: "dna", Output: "text", Threads: 8}
	got := Merge(base, Settings{Type: "slseguid", Header: true})
	assert.Equal(t, Settings{Type: "slseguid", Table: "dna", Output: "text", Threads: 8, Header: true}, got)
	assert.Equal(t, base, Merge(base, Settings{}))
}

func TestLoadDotEnv(t *testing.T) {
	p := writeFile(t, ".env", "SEGUID_TYPE=scseguid\nSEGUID_TABLE=rna\n")
	t.Setenv("SEGUID_TABLE", "iupac")
	t.Setenv("SEGUID_TYPE", "")
	require.NoError(t, os.Unsetenv("SEGUID_TYPE"))

	require.NoError(t, LoadDotEnv(p))
	assert.Equal(t, "scseguid", os.Getenv("SEGUID_TYPE"))
	assert.Equal(t, "iupac", os.Getenv("SEGUID_TABLE"), "existing variables win")

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
