package repository

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunseo/itinerary-backend-go/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, users *UserRepository, email string) int64 {
	t.Helper()
	u, err := users.Create(email, "$2a$10$fakehashfortestingonly1234567890123456789012345678901")
	require.NoError(t, err)
	return u.ID
}

func TestItineraryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")

	rec, err := repo.Create(owner, "Tokyo spring trip", `{"tripDuration":3}`)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Positive(t, rec.ID)
	assert.Equal(t, owner, rec.UserID)
	assert.Equal(t, "Tokyo spring trip", rec.Title)
	assert.Equal(t, `{"tripDuration":3}`, rec.Data)
}

func TestItineraryCreateRollsBackOnBadOwner(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	repo := NewItineraryRepository(db)

	rec, err := repo.Create(9999, "Orphan trip", `{}`)
	require.Error(t, err, "inserting for a nonexistent user violates the FK")
	assert.Nil(t, rec)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM itineraries").Scan(&count))
	assert.Zero(t, count, "the failed insert must not leave a row behind")
}

func TestItineraryGetScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")
	stranger := createUser(t, users, "bob@example.com")

	rec, err := repo.Create(owner, "Tokyo spring trip", `{}`)
	require.NoError(t, err)

	got, err := repo.GetByID(rec.ID, stranger)
	require.NoError(t, err)
	assert.Nil(t, got, "another user's itinerary must look like it doesn't exist")

	got, err = repo.GetByID(rec.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
}

func TestItineraryListByUserOmitsPayload(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")
	other := createUser(t, users, "bob@example.com")

	for i := 0; i < 3; i++ {
		_, err := repo.Create(owner, fmt.Sprintf("Trip %d", i), `{"big":"payload"}`)
		require.NoError(t, err)
	}
	_, err := repo.Create(other, "Bob's trip", `{}`)
	require.NoError(t, err)

	records, err := repo.ListByUser(owner)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, owner, r.UserID)
		assert.Empty(t, r.Data, "listings carry metadata only")
	}
}

func TestItineraryListRecentCap(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")
	for i := 0; i < 25; i++ {
		_, err := repo.Create(owner, fmt.Sprintf("Trip %d", i), `{}`)
		require.NoError(t, err)
	}

	records, err := repo.ListRecent()
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestItineraryUpdate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")
	stranger := createUser(t, users, "bob@example.com")

	rec, err := repo.Create(owner, "Old title", `{"v":1}`)
	require.NoError(t, err)

	title := "New title"
	found, err := repo.Update(rec.ID, owner, &title, nil)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.GetByID(rec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, `{"v":1}`, got.Data, "a title-only update leaves the payload alone")

	found, err = repo.Update(rec.ID, stranger, &title, nil)
	require.NoError(t, err)
	assert.False(t, found, "updates are owner-scoped")
}

func TestItineraryDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewItineraryRepository(db)

	owner := createUser(t, users, "alice@example.com")
	stranger := createUser(t, users, "bob@example.com")

	rec, err := repo.Create(owner, "Trip", `{}`)
	require.NoError(t, err)

	found, err := repo.Delete(rec.ID, stranger)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.Delete(rec.ID, owner)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.GetByID(rec.ID, owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}
