package writer_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/writer"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	scores := map[string]int{
		"0xbbb": 125,
		"0xaaa": 870,
	}

	require.NoError(t, writer.NewFileWriter(path, writer.FormatJSON).Write(scores))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, scores, got)

	// Keys are emitted sorted with four-space indentation.
	assert.Contains(t, string(data), "{\n    \"0xaaa\": 870,\n    \"0xbbb\": 125\n}")
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	scores := map[string]int{
		"0xaaa": 870,
		"0xbbb": 125,
	}

	require.NoError(t, writer.NewFileWriter(path, writer.FormatYAML).Write(scores))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, scores, got)
}

func TestWriteUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.xml")

	err := writer.NewFileWriter(path, "xml").Write(map[string]int{"0xaaa": 500})

	assert.ErrorIs(t, err, writer.ErrUnknownFormat)
	assert.NoFileExists(t, path)
}

func TestWriteEmptyScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	require.NoError(t, writer.NewFileWriter(path, writer.FormatJSON).Write(map[string]int{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteBadPath(t *testing.T) {
	w := writer.NewFileWriter(filepath.Join(t.TempDir(), "missing", "scores.json"), writer.FormatJSON)
	assert.Error(t, w.Write(map[string]int{"0xaaa": 500}))
}
