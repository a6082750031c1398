package filestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JSON and YAML lose monotonic clock readings; use whole seconds in UTC.
var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func sampleState(t *testing.T) *domain.State {
	t.Helper()
	s := domain.NewState()
	for _, d := range []string{"Make tea", "Water plants", "Write report"} {
		s.Add(d, t0)
	}
	s.Check(1)
	s.StartPomodoro(2, t0.Add(time.Minute), domain.RunningKeep)
	s.Find(3).AccumulatedSeconds = 3000
	s.Archive(3)
	return s
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("/x/tasks.json"))
	assert.Equal(t, FormatYAML, FormatForPath("/x/tasks.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("/x/tasks.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("/x/tasks"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested", "tasks.json"))

	got, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
	assert.Equal(t, 1, got.NextID)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := New(path).Load()

	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"tasks.json", "tasks.yaml"} {
		t.Run(name, func(t *testing.T) {
			store := New(filepath.Join(t.TempDir(), "pt", name))
			want := sampleState(t)

			require.NoError(t, store.Save(want))
			got, err := store.Load()
			require.NoError(t, err)

			assert.Equal(t, want.NextID, got.NextID)
			require.Len(t, got.Tasks, len(want.Tasks))
			for i, w := range want.Tasks {
				g := got.Tasks[i]
				assert.Equal(t, w.ID, g.ID)
				assert.Equal(t, w.Description, g.Description)
				assert.Equal(t, w.Checked, g.Checked)
				assert.Equal(t, w.Archived, g.Archived)
				assert.Equal(t, w.AccumulatedSeconds, g.AccumulatedSeconds)
				assert.True(t, w.Created.Equal(g.Created))
				if w.PomodoroStarted == nil {
					assert.Nil(t, g.PomodoroStarted)
				} else {
					require.NotNil(t, g.PomodoroStarted)
					assert.True(t, w.PomodoroStarted.Equal(*g.PomodoroStarted))
				}
			}

			// Saving what was loaded reproduces the same file.
			before, err := os.ReadFile(store.Path())
			require.NoError(t, err)
			store.now = func() time.Time { return t0 }
			require.NoError(t, store.Save(got))
			again, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, got, again)
			assert.NotEmpty(t, before)
		})
	}
}

func TestStore_SaveEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := New(path)

	require.NoError(t, store.Save(domain.NewState()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"tasks": []`)
}

func TestStore_IDsNotReusedAfterReload(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.json"))
	s := domain.NewState()
	s.Add("a", t0)
	s.Add("b", t0)
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)
	task := loaded.Add("c", t0)

	assert.Equal(t, 3, task.ID)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path).Load()

	assert.ErrorContains(t, err, "parse store file")
}

func TestStore_FailedSaveKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := New(path)
	require.NoError(t, store.Save(sampleState(t)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// A directory in the way of the temp file makes the write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(path+".tmp", "blocker"), nil, 0o600))

	err = store.Save(domain.NewState())

	require.Error(t, err)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
