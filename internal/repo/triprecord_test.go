package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagnon/travel-assistant/internal/domain"
	"github.com/mgagnon/travel-assistant/internal/repo"
	"github.com/mgagnon/travel-assistant/testutil"
)

// newTestRepo returns a RecordRepo backed by a transaction that is rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain has already applied the
// migrations.
func newTestRepo(t *testing.T) repo.RecordRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewRecordRepo(tx)
}

func TestRecordRepo_GetAbsentKey(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Get(context.Background(), "travel_assistant_trip")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordRepo_SetThenGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	const doc = `{"destination": "Tokyo, Japan", "itinerary": []}`
	require.NoError(t, r.Set(ctx, "travel_assistant_trip", doc))

	got, err := r.Get(ctx, "travel_assistant_trip")
	require.NoError(t, err)
	// jsonb normalizes whitespace, so compare semantically.
	assert.JSONEq(t, doc, got)
}

func TestRecordRepo_SetOverwrites(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "travel_assistant_trip", `{"destination":"Tokyo"}`))
	require.NoError(t, r.Set(ctx, "travel_assistant_trip", `{"destination":"Paris"}`))

	got, err := r.Get(ctx, "travel_assistant_trip")
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Paris"}`, got)
}

func TestRecordRepo_KeysAreIndependent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", `{"n":1}`))
	require.NoError(t, r.Set(ctx, "b", `{"n":2}`))

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, got)
}

func TestRecordRepo_Remove(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "travel_assistant_trip", `{"destination":"Tokyo"}`))
	require.NoError(t, r.Remove(ctx, "travel_assistant_trip"))

	_, err := r.Get(ctx, "travel_assistant_trip")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordRepo_RemoveAbsentKey(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.Remove(context.Background(), "never-written"),
		"removing an absent key is a no-op")
}

func TestRecordRepo_RejectsInvalidJSON(t *testing.T) {
	r := newTestRepo(t)

	// The column is jsonb, so Postgres refuses documents that do not parse.
	err := r.Set(context.Background(), "travel_assistant_trip", "{not json")
	require.Error(t, err)
}
