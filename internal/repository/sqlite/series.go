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

// SeriesRepository implements domain.SeriesRepository using SQLite.
//
// Reads return series with owner, members and invites populated. The
// invite list is derived by querying invites for the series id; it is
// never stored on the series row, so invite creation and deletion need
// no second write to stay consistent.
type SeriesRepository struct {
	db *sql.DB
}

// NewSeriesRepository creates a new SQLite-backed SeriesRepository.
func NewSeriesRepository(db *DB) *SeriesRepository {
	return &SeriesRepository{db: db.SqlDB}
}

// Create inserts the series row and the owner's membership row in a
// single transaction, so a series is never observable without its owner
// as a member.
func (r *SeriesRepository) Create(ctx context.Context, series *domain.Series) error {
	if series.ID == "" {
		series.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO series (id, title, description, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		series.ID, series.Title, series.Description, series.OwnerID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert series: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO series_members (series_id, user_id) VALUES (?, ?)`,
		series.ID, series.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	series.CreatedAt = now
	series.UpdatedAt = now
	return nil
}

func (r *SeriesRepository) GetByID(ctx context.Context, id string) (*domain.Series, error) {
	series := &domain.Series{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, owner_id, created_at, updated_at
		 FROM series WHERE id = ?`, id,
	).Scan(&series.ID, &series.Title, &series.Description, &series.OwnerID,
		&series.CreatedAt, &series.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query series by id: %w", err)
	}

	if err := r.populate(ctx, series); err != nil {
		return nil, err
	}
	return series, nil
}

func (r *SeriesRepository) ListByMember(ctx context.Context, userID string) ([]domain.Series, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.title, s.description, s.owner_id, s.created_at, s.updated_at
		 FROM series s
		 JOIN series_members m ON m.series_id = s.id
		 WHERE m.user_id = ?
		 ORDER BY s.created_at`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query series by member: %w", err)
	}
	defer rows.Close()

	var list []domain.Series
	for rows.Next() {
		var s domain.Series
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.OwnerID,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series: %w", err)
	}

	for i := range list {
		if err := r.populate(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *SeriesRepository) Update(ctx context.Context, id string, update domain.SeriesUpdate) (*domain.Series, error) {
	series, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		series.Title = *update.Title
	}
	if update.Description != nil {
		series.Description = *update.Description
	}
	series.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`UPDATE series SET title = ?, description = ?, updated_at = ? WHERE id = ?`,
		series.Title, series.Description, series.UpdatedAt, series.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update series: %w", err)
	}
	return series, nil
}

// Delete removes the series. Membership rows cascade; invites that
// referenced the series have their series_id nulled by the schema.
func (r *SeriesRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM series WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete series: %w", err)
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

func (r *SeriesRepository) AddMember(ctx context.Context, seriesID, userID string) error {
	if err := r.exists(ctx, seriesID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO series_members (series_id, user_id) VALUES (?, ?)`,
		seriesID, userID,
	)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *SeriesRepository) RemoveMember(ctx context.Context, seriesID, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM series_members WHERE series_id = ? AND user_id = ?`,
		seriesID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
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

func (r *SeriesRepository) HasMember(ctx context.Context, seriesID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM series_members WHERE series_id = ? AND user_id = ?)`,
		seriesID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query membership: %w", err)
	}
	return exists, nil
}

func (r *SeriesRepository) exists(ctx context.Context, seriesID string) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM series WHERE id = ?)`, seriesID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("query series existence: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// populate resolves the owner, members and invites of a series.
func (r *SeriesRepository) populate(ctx context.Context, series *domain.Series) error {
	owner := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(subject, ''), name, email, created_at, updated_at
		 FROM users WHERE id = ?`, series.OwnerID,
	).Scan(&owner.ID, &owner.Subject, &owner.Name, &owner.Email,
		&owner.CreatedAt, &owner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("query series owner: %w", err)
	}
	series.Owner = owner

	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, COALESCE(u.subject, ''), u.name, u.email, u.created_at, u.updated_at
		 FROM users u
		 JOIN series_members m ON m.user_id = u.id
		 WHERE m.series_id = ?
		 ORDER BY m.added_at`, series.ID,
	)
	if err != nil {
		return fmt.Errorf("query series members: %w", err)
	}
	defer rows.Close()

	series.Members = nil
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Subject, &u.Name, &u.Email,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return fmt.Errorf("scan member: %w", err)
		}
		series.Members = append(series.Members, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate members: %w", err)
	}

	invites, err := scanInvites(ctx, r.db,
		`SELECT id, title, date, description, series_id, created_at, updated_at
		 FROM invites WHERE series_id = ? ORDER BY date`, series.ID)
	if err != nil {
		return fmt.Errorf("query series invites: %w", err)
	}
	series.Invites = invites
	return nil
}
