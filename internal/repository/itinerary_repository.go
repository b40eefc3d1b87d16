package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hyunseo/itinerary-backend-go/internal/database"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// recentFallbackLimit caps the unscoped listing used when no user is
// authenticated.
const recentFallbackLimit = 20

// ItineraryRepository handles database operations for saved itineraries
type ItineraryRepository struct {
	db *sql.DB
}

// NewItineraryRepository creates a new itinerary repository
func NewItineraryRepository(db *sql.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// Create inserts a saved itinerary and returns it with its assigned ID. The
// insert and read-back share a transaction so the returned row (with its
// database-assigned timestamp) is exactly what was committed.
func (r *ItineraryRepository) Create(userID int64, title, data string) (*models.ItineraryRecord, error) {
	var rec models.ItineraryRecord
	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO itineraries (user_id, title, data) VALUES (?, ?, ?)",
			userID, title, data,
		)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read itinerary id: %w", err)
		}

		err = tx.QueryRow(
			"SELECT id, user_id, title, data, created_at FROM itineraries WHERE id = ?", id,
		).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Data, &rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to read back itinerary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByID retrieves one itinerary scoped to its owner; a missing or
// foreign row returns nil, nil
func (r *ItineraryRepository) GetByID(id, userID int64) (*models.ItineraryRecord, error) {
	var rec models.ItineraryRecord
	err := r.db.QueryRow(
		"SELECT id, user_id, title, data, created_at FROM itineraries WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Data, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}
	return &rec, nil
}

// ListByUser retrieves the owner's itineraries, newest first, without the
// data payload
func (r *ItineraryRepository) ListByUser(userID int64) ([]models.ItineraryRecord, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, title, created_at FROM itineraries WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListRecent retrieves the newest itineraries across all users, without the
// data payload. This backs the anonymous listing fallback.
func (r *ItineraryRepository) ListRecent() ([]models.ItineraryRecord, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, title, created_at FROM itineraries ORDER BY created_at DESC LIMIT ?",
		recentFallbackLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent itineraries: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]models.ItineraryRecord, error) {
	var records []models.ItineraryRecord
	for rows.Next() {
		var rec models.ItineraryRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Update changes the title and/or data of an owner's itinerary. It reports
// whether a row matched.
func (r *ItineraryRepository) Update(id, userID int64, title, data *string) (bool, error) {
	var sets []string
	var args []interface{}

	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *title)
	}
	if data != nil {
		sets = append(sets, "data = ?")
		args = append(args, *data)
	}
	if len(sets) == 0 {
		rec, err := r.GetByID(id, userID)
		return rec != nil, err
	}

	args = append(args, id, userID)
	res, err := r.db.Exec(
		"UPDATE itineraries SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?",
		args...,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update itinerary: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes an owner's itinerary. It reports whether a row matched.
func (r *ItineraryRepository) Delete(id, userID int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM itineraries WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete itinerary: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
