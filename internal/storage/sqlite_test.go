package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLite {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "kv.db")
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_GetAbsentKey(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must read as nil without error")
}

func TestSQLite_SetGetRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestSQLite_SetOverwritesLastWriterWins(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_ClearRemovesEverything(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := s.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}

func TestSQLite_UpdateCommitsBothWrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return tx.Set(ctx, "b", []byte("2"))
	})
	require.NoError(t, err)

	a, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("1"), a)
	b, err := s.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, []byte("2"), b)
}

func TestSQLite_UpdateRollsBackOnError(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.Update(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	a, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, a, "write inside failed Update must not be visible")
}

func TestSQLite_ReopenSeesPersistedData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("survives")))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("survives"), v)
}
