package profile

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/storage"
	"github.com/jonathan/career-planner/internal/types"
)

// failingStore rejects every write
type failingStore struct {
	storage.Store
}

func (failingStore) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func openTestStores(t *testing.T) map[string]storage.Store {
	t.Helper()

	fileStore, err := storage.NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqliteStore, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]storage.Store{
		storage.BackendFile:   fileStore,
		storage.BackendSQLite: sqliteStore,
	}
}

func TestOpen_RequiresDependencies(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = Open(ctx, nil, catalog.Default(), zerolog.Nop())
	assert.Error(t, err)

	_, err = Open(ctx, store, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestSession_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()

	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, &types.Profile{}, s.Snapshot())

			s.SetCourse(ctx, "mathematics", types.LevelAPIB)
			s.AddActivity(ctx, "Math Club", 2)
			s.RateSkill(ctx, "analytical", 5)
			s.SetPreference(ctx, "theory-applied", 30)
			s.SetGoals(ctx, []string{"salary", "job-security"}, types.CityEither, types.ScheduleTraditional)
			s.MovePriority(ctx, 1, 0)
			s.SaveMajor(ctx, "engineering")
			s.SaveCollege(ctx, "state-university")
			s.SaveJob(ctx, "tutor")

			reopened, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, s.Snapshot(), reopened.Snapshot())

			got := reopened.Snapshot()
			assert.Equal(t, "job-security", got.Goals.Priorities[0].Priority)
			require.Len(t, got.SavedMajors, 1)
			assert.Equal(t, "Engineering", got.SavedMajors[0].Name)
		})
	}
}

func TestSession_SaveUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)

	s.SaveMajor(ctx, "astrology")
	s.SaveCollege(ctx, "hogwarts")
	got := s.SaveJob(ctx, "")

	assert.Empty(t, got.SavedMajors)
	assert.Empty(t, got.SavedColleges)
	assert.Empty(t, got.SavedJobs)
}

func TestSession_SaveTwiceKeepsOneEntry(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)

	s.SaveMajor(ctx, "arts")
	got := s.SaveMajor(ctx, "arts")
	assert.Len(t, got.SavedMajors, 1)

	got = s.RemoveSavedMajor(ctx, "arts")
	assert.Empty(t, got.SavedMajors)
}

func TestSession_MalformedStoredDocument(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Put(ctx, StorageKey, []byte(`{"courses": [`)))

	var logs bytes.Buffer
	s, err := Open(ctx, store, catalog.Default(), zerolog.New(&logs))
	require.NoError(t, err)

	assert.Equal(t, &types.Profile{}, s.Snapshot())
	assert.Contains(t, logs.String(), "stored profile partially restored")
}

func TestSession_PersistFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	inner, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer inner.Close()

	var logs bytes.Buffer
	s, err := Open(ctx, failingStore{Store: inner}, catalog.Default(), zerolog.New(&logs))
	require.NoError(t, err)

	got := s.RateSkill(ctx, "creativity", 4)

	assert.Equal(t, 4, got.Skills["creativity"])
	assert.Contains(t, logs.String(), "failed to persist profile")
	assert.Contains(t, logs.String(), "disk full")
}

func TestSession_SubscribeAndReset(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)

	var seen []*types.Profile
	unsubscribe := s.Subscribe(func(p *types.Profile) { seen = append(seen, p) })

	s.AddActivity(ctx, "Band", 3)
	s.Reset(ctx)
	unsubscribe()
	s.AddActivity(ctx, "Chess", 1)

	require.Len(t, seen, 2)
	assert.Len(t, seen[0].Activities, 1)
	assert.Equal(t, &types.Profile{}, seen[1])

	reopened, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []types.ActivityRecord{{Name: "Chess", Hours: 1}}, reopened.Snapshot().Activities)
}

func TestSession_ResetDeletesStoredDocument(t *testing.T) {
	ctx := context.Background()

	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
			require.NoError(t, err)
			s.SaveMajor(ctx, "arts")

			_, err = store.Get(ctx, StorageKey)
			require.NoError(t, err)

			got := s.Reset(ctx)
			assert.Equal(t, &types.Profile{}, got)

			_, err = store.Get(ctx, StorageKey)
			assert.ErrorIs(t, err, storage.ErrNotFound)

			reopened, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, &types.Profile{}, reopened.Snapshot())
		})
	}
}

func TestSession_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)
	s.RateSkill(ctx, "leadership", 3)

	snap := s.Snapshot()
	snap.Skills["leadership"] = 1

	assert.Equal(t, 3, s.Snapshot().Skills["leadership"])
}

func TestSession_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	s, err := Open(ctx, store, catalog.Default(), zerolog.Nop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddActivity(ctx, "Volunteering", 1)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Activities, 20)
}
