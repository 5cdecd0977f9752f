package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/google/uuid"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

const userColumns = `id, email, COALESCE(name, '') AS name, COALESCE(display_name, '') AS display_name,
	hard_interval, medium_interval, easy_interval, created_at, updated_at`

func (u *UsersR) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	return user, nil
}

// UpsertUser creates the user on first sign-in and refreshes the profile
// fields on subsequent ones. Review intervals keep their stored values on
// update and the defaults on insert.
func (u *UsersR) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (id, email, name, display_name, hard_interval, medium_interval, easy_interval)
		VALUES ($1, $2, $3, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING ` + userColumns

	defaults := models.DefaultReviewIntervals()

	var saved models.User
	err := u.db.GetContext(ctx, &saved, query, user.ID, user.Email, user.Name,
		defaults.HardMinutes, defaults.MediumMinutes, defaults.EasyMinutes)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to upsert user %s: %w", user.ID, err)
	}

	return saved, nil
}

func (u *UsersR) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	query := `UPDATE users SET display_name = $2, updated_at = NOW() WHERE id = $1`

	res, err := u.db.ExecContext(ctx, query, userID, displayName)
	if err != nil {
		return fmt.Errorf("failed to update display name for user %s: %w", userID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateReviewIntervals persists an interval policy. Callers validate the
// policy first; this method never sees an unvalidated one.
func (u *UsersR) UpdateReviewIntervals(ctx context.Context, userID uuid.UUID, intervals models.ReviewIntervals) error {
	query := `
		UPDATE users
		SET hard_interval = $2, medium_interval = $3, easy_interval = $4, updated_at = NOW()
		WHERE id = $1
	`

	res, err := u.db.ExecContext(ctx, query, userID,
		intervals.HardMinutes, intervals.MediumMinutes, intervals.EasyMinutes)
	if err != nil {
		return fmt.Errorf("failed to update review intervals for user %s: %w", userID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteUser removes the account; collections and cards cascade.
func (u *UsersR) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	return nil
}
