package dom

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.db")

	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Put(context.Background(), Element{ID: "a", Tag: "p"}))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.db")

	st1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st1.Put(context.Background(), Element{ID: "a", Tag: "p", Value: "hello"}))
	require.NoError(t, st1.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	el, err := st2.ElementByID(context.Background(), "a")
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "hello", el.Value)
}

func TestElementByID_AbsentYieldsNilNotError(t *testing.T) {
	st := openTestStore(t)

	el, err := st.ElementByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, el)
}

func TestPut_OverwritesById(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, Element{ID: "msg", Tag: "p", Value: "first"}))
	require.NoError(t, st.Put(ctx, Element{ID: "msg", Tag: "p", Value: "second"}))

	el, err := st.ElementByID(ctx, "msg")
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "second", el.Value)
}

func TestPut_RejectsEmptyIDAndTag(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	assert.Error(t, st.Put(ctx, Element{Tag: "p"}))
	assert.Error(t, st.Put(ctx, Element{ID: "a"}))
}

func TestElementsByTag_DeterministicOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, Element{ID: "c", Tag: "p", Value: "3"}))
	require.NoError(t, st.Put(ctx, Element{ID: "a", Tag: "p", Value: "1"}))
	require.NoError(t, st.Put(ctx, Element{ID: "b", Tag: "input", Value: "2"}))

	els, err := st.ElementsByTag(ctx, "p")
	require.NoError(t, err)
	require.Len(t, els, 2)

	// Insertion order, not id order.
	assert.Equal(t, "c", els[0].ID)
	assert.Equal(t, "a", els[1].ID)
}

func TestElementsByTag_EmptyResultIsNotNil(t *testing.T) {
	st := openTestStore(t)

	els, err := st.ElementsByTag(context.Background(), "video")
	require.NoError(t, err)
	assert.NotNil(t, els)
	assert.Empty(t, els)
}
