package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emotions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `{"emotions": ["Joy", " Calm ", "", "Anger"]}`)

	emotions, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Joy", "Calm", "Anger"}, emotions)
}

func TestLoad_MissingFile(t *testing.T) {
	emotions, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)
	assert.NotNil(t, emotions)
	assert.Empty(t, emotions)
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":        `{"emotions": [`,
		"missing key":     `{"feelings": ["Joy"]}`,
		"wrong type":      `{"emotions": "Joy"}`,
		"non-string item": `{"emotions": ["Joy", 3]}`,
		"top-level array": `["Joy"]`,
		"null list":       `{"emotions": null}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			emotions, err := Parse([]byte(content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotNil(t, emotions)
			assert.Empty(t, emotions)
		})
	}
}

func TestParse_EmptyList(t *testing.T) {
	emotions, err := Parse([]byte(`{"emotions": []}`))
	require.NoError(t, err)
	assert.Empty(t, emotions)
}

func TestBundledCatalogue(t *testing.T) {
	emotions, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.NotEmpty(t, emotions)
	assert.Contains(t, emotions, "Joy")
}
