package store

import (
	"context"
	"testing"

	"study-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreFindUnknown(t *testing.T) {
	s := NewMemStore()
	_, err := s.FindUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreSaveAndFind(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := model.NewUser("alice")
	u.Subjects = []byte(`[{"id":"1"}]`)
	require.NoError(t, s.SaveUser(ctx, u))

	got, err := s.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got.Subjects))

	// Returned documents are copies; mutating one must not leak back.
	got.Subjects[2] = 'x'
	again, err := s.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(again.Subjects))
}

func TestMemStoreSaveIsReplace(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := model.NewUser("alice")
	u.Subjects = []byte(`[{"id":"1"},{"id":"2"}]`)
	require.NoError(t, s.SaveUser(ctx, u))

	u.Subjects = []byte(`[{"id":"2"}]`)
	require.NoError(t, s.SaveUser(ctx, u))

	got, err := s.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(got.Subjects))
}
