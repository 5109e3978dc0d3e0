package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshots.toml")
	cfg := viper.New()
	cfg.Set(PathKey, path)

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store, path
}

func TestStoreMissingFileReadsAsEmpty(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	_, ok, err := store.Get(context.Background(), "lastPartnerState_alice")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := store.GetInt(context.Background(), "lastBucketCount_alice")
	require.NoError(t, err)
	assert.Equal(t, -1, count)
}

func TestStoreRoundTripAcrossInstances(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()
	raw := `{"mood":"happy","activities":[{"type":"sleeping","timestamp":"T1"}]}`

	require.NoError(t, store.Put(ctx, "lastPartnerState_alice", raw))
	require.NoError(t, store.PutInt(ctx, "lastBucketCount_alice", 3))

	cfg := viper.New()
	cfg.Set(PathKey, path)
	reopened, err := NewStore(cfg)
	require.NoError(t, err)

	got, ok, err := reopened.Get(ctx, "lastPartnerState_alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, got)

	count, err := reopened.GetInt(ctx, "lastBucketCount_alice")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileMode), info.Mode().Perm())
}

func TestStoreRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, _, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported snapshot schema version 99")
}

func TestStoreReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[states]
"lastPartnerState_a.b" = '{"mood":"x"}'

[counts]
"lastBucketCount_a.b" = 7
`), 0o600))

	got, ok, err := store.Get(context.Background(), "lastPartnerState_a.b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"mood":"x"}`, got)

	count, err := store.GetInt(context.Background(), "lastBucketCount_a.b")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestStoreConcurrentWritersOnSamePathDoNotLoseKeys(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	cfg := viper.New()
	cfg.Set(PathKey, path)
	other, err := NewStore(cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		target := store
		if i%2 == 1 {
			target = other
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, target.PutInt(context.Background(), "k"+strconv.Itoa(i), i))
		}()
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		count, err := store.GetInt(context.Background(), "k"+strconv.Itoa(i))
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}
