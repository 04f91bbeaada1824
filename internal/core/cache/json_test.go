package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	entries map[string][]byte
	loads   int
}

func (m *mapStore) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, ok := m.entries[key]; ok {
		return b, nil
	}
	m.loads++
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	m.entries[key] = b
	return b, nil
}

func (m *mapStore) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

type dish struct {
	Name string `json:"name"`
}

func TestGetOrLoadJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	s := &mapStore{entries: map[string][]byte{}}
	load := func(context.Context) (*dish, error) { return &dish{Name: "soup"}, nil }

	got, err := GetOrLoadJSON[dish](s, context.Background(), "d1", time.Minute, load)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "soup", got.Name)

	// Second call is served from the store, not the loader.
	got, err = GetOrLoadJSON[dish](s, context.Background(), "d1", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "soup", got.Name)
	assert.Equal(t, 1, s.loads)
}

func TestGetOrLoadJSON_AbsentRowCachedAsNull(t *testing.T) {
	t.Parallel()

	s := &mapStore{entries: map[string][]byte{}}
	load := func(context.Context) (*dish, error) { return nil, nil }

	got, err := GetOrLoadJSON[dish](s, context.Background(), "missing", time.Minute, load)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOrLoadJSON[dish](s, context.Background(), "missing", time.Minute, load)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, s.loads, "the miss itself is cached")
}

func TestGetOrLoadJSON_LoaderError(t *testing.T) {
	t.Parallel()

	s := &mapStore{entries: map[string][]byte{}}
	boom := errors.New("store down")

	_, err := GetOrLoadJSON[dish](s, context.Background(), "d1", time.Minute,
		func(context.Context) (*dish, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.entries, "errors are not cached")
}
