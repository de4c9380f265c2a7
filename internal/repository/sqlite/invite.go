package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gatherly/internal/domain"
)

// InviteRepository implements domain.InviteRepository using SQLite.
type InviteRepository struct {
	db *sql.DB
}

// NewInviteRepository creates a new SQLite-backed InviteRepository.
func NewInviteRepository(db *DB) *InviteRepository {
	return &InviteRepository{db: db.SqlDB}
}

func (r *InviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, title, date, description, series_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		invite.ID, invite.Title, invite.Date.UTC(), invite.Description, invite.SeriesID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}

	invite.CreatedAt = now
	invite.UpdatedAt = now
	return nil
}

func (r *InviteRepository) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	invite := &domain.Invite{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, date, description, series_id, created_at, updated_at
		 FROM invites WHERE id = ?`, id,
	).Scan(&invite.ID, &invite.Title, &invite.Date, &invite.Description,
		&invite.SeriesID, &invite.CreatedAt, &invite.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query invite by id: %w", err)
	}
	return invite, nil
}

func (r *InviteRepository) List(ctx context.Context) ([]domain.Invite, error) {
	return scanInvites(ctx, r.db,
		`SELECT id, title, date, description, series_id, created_at, updated_at
		 FROM invites ORDER BY date`)
}

func (r *InviteRepository) ListBySeries(ctx context.Context, seriesID string) ([]domain.Invite, error) {
	return scanInvites(ctx, r.db,
		`SELECT id, title, date, description, series_id, created_at, updated_at
		 FROM invites WHERE series_id = ? ORDER BY date`, seriesID)
}

func (r *InviteRepository) Update(ctx context.Context, id string, update domain.InviteUpdate) (*domain.Invite, error) {
	invite, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		invite.Title = *update.Title
	}
	if update.Date != nil {
		invite.Date = update.Date.UTC()
	}
	if update.Description != nil {
		invite.Description = *update.Description
	}
	if update.SeriesIDSet {
		invite.SeriesID = update.SeriesID
	}
	invite.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`UPDATE invites SET title = ?, date = ?, description = ?, series_id = ?, updated_at = ?
		 WHERE id = ?`,
		invite.Title, invite.Date, invite.Description, invite.SeriesID, invite.UpdatedAt, invite.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update invite: %w", err)
	}
	return invite, nil
}

func (r *InviteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete invite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvites(ctx context.Context, db *sql.DB, query string, args ...any) ([]domain.Invite, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invites: %w", err)
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		var inv domain.Invite
		if err := rows.Scan(&inv.ID, &inv.Title, &inv.Date, &inv.Description,
			&inv.SeriesID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}
