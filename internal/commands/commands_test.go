package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/moodlog/internal/models"
)

// testEnv points every path the commands touch into a temp dir
type testEnv struct {
	dir        string
	configPath string
}

func newTestEnv(t *testing.T, emotionsJSON string) testEnv {
	t.Helper()
	dir := t.TempDir()

	emotionsPath := filepath.Join(dir, "emotions.json")
	if emotionsJSON != "" {
		require.NoError(t, os.WriteFile(emotionsPath, []byte(emotionsJSON), 0644))
	}

	cfg := fmt.Sprintf(`
database_path: %s
emotions_file: %s
log:
  file: %s
  level: debug
ui:
  animations: false
`, filepath.Join(dir, "data", "emotions.db"), emotionsPath, filepath.Join(dir, "data", "moodlog.log"))

	configPath := filepath.Join(dir, "moodlog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0644))

	return testEnv{dir: dir, configPath: configPath}
}

// run executes one command with a fresh command tree, like a separate process would
func (e testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestAddAndStats(t *testing.T) {
	env := newTestEnv(t, `{"emotions": ["Joy", "Anger"]}`)

	out, err := env.run(t, "", "add", "Joy", "--date", "2024-05-01", "--duration", "20", "--reason", "walk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Joy for 2024-05-01")
	assert.Contains(t, out, "Duration: 20 min")
	assert.Contains(t, out, "Reason: walk")

	out, err = env.run(t, "", "add", "Joy +10 @2024-05-01: sunshine")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Joy for 2024-05-01")

	out, err = env.run(t, "", "add", "Anger", "-d", "2024-04-30", "-m", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "Duration: 0 min")
	assert.Contains(t, out, "Reason: not specified")

	out, err = env.run(t, "", "stats", "--details")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[2], "2024-04-30")
	assert.Contains(t, lines[2], "Anger")
	assert.Contains(t, out, "Reasons: walk; sunshine")
	assert.Contains(t, out, "Total time spent in emotions: 30 minutes")

	// rows are ordered by date, so Anger (04-30) comes first
	assert.Less(t, strings.Index(out, "Anger"), strings.Index(out, "2024-05-01"))
}

func TestAdd_InvalidDate(t *testing.T) {
	env := newTestEnv(t, `{"emotions": ["Joy"]}`)

	out, err := env.run(t, "", "add", "Joy", "--date", "2024-02-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: invalid date '2024-02-30'. Use YYYY-MM-DD.")

	out, err = env.run(t, "", "add", "Joy @2024-13-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid date '2024-13-01'")

	out, err = env.run(t, "", "stats")
	require.NoError(t, err)
	assert.Equal(t, "No data to display.\n", out)
}

func TestAdd_DefaultsToToday(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run(t, "", "add", "Calm")
	require.NoError(t, err)
	assert.Regexp(t, `Added Calm for \d{4}-\d{2}-\d{2}`, out)
}

func TestAdd_RequiresEmotion(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run(t, "", "add")
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run(t, "", "add", "Joy", "--date", "2024-05-01")
	require.NoError(t, err)

	out, err := env.run(t, "n\n", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "This cannot be undone.")
	assert.Contains(t, out, "Cancelled.")

	out, err = env.run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Joy")

	out, err = env.run(t, "y\n", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "All statistics cleared.")

	out, err = env.run(t, "", "stats")
	require.NoError(t, err)
	assert.Equal(t, "No data to display.\n", out)

	// --yes skips the prompt, and clearing an empty log is fine
	out, err = env.run(t, "", "clear", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "All statistics cleared.")
}

func TestEmotions(t *testing.T) {
	t.Run("lists the catalogue", func(t *testing.T) {
		env := newTestEnv(t, `{"emotions": ["Joy", "Calm"]}`)

		out, err := env.run(t, "", "emotions")
		require.NoError(t, err)
		assert.Equal(t, "Joy\nCalm\n", out)
	})

	t.Run("missing file is a warning", func(t *testing.T) {
		env := newTestEnv(t, "")

		out, err := env.run(t, "", "emotions")
		require.NoError(t, err)
		assert.Contains(t, out, "Warning: Emotions file")
		assert.Contains(t, out, "not found.")
	})

	t.Run("malformed file is a different warning", func(t *testing.T) {
		env := newTestEnv(t, `{"emotions": [`)

		out, err := env.run(t, "", "emotions")
		require.NoError(t, err)
		assert.Contains(t, out, "is malformed.")
	})
}

func TestStartupFailures(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "stats"})
		assert.Error(t, cmd.Execute())
	})

	t.Run("database cannot be opened", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		configPath := filepath.Join(dir, "moodlog.yaml")
		cfg := fmt.Sprintf("database_path: %s\nlog:\n  file: \"\"\n", filepath.Join(blocker, "emotions.db"))
		require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0644))

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", configPath, "stats"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open database")
	})
}

func TestVersionAndHelp(t *testing.T) {
	env := newTestEnv(t, "")

	SetVersion("1.2.3", "abc123", "2024-05-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "moodlog 1.2.3 (commit abc123, built 2024-05-01)\n", out)

	out, err = env.run(t, "", "help")
	require.NoError(t, err)
	assert.Contains(t, out, "moodlog - emotion diary")
	assert.Contains(t, out, "--config")
}

func TestPrintStats(t *testing.T) {
	var b bytes.Buffer
	printStats(&b, []models.StatGroup{
		{Date: "2024-05-01", EmotionName: "A very long emotion name that overflows", OccurrenceCount: 2, TotalDurationMinutes: 7, Reasons: "x; y"},
	}, false)

	out := b.String()
	assert.Contains(t, out, "A very long emotion name th...")
	assert.NotContains(t, out, "Reasons:")
	assert.Contains(t, out, "Total time spent in emotions: 7 minutes")
}
