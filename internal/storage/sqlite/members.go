package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// ListMembers returns the roster ordered by position.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, position FROM members ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.Name, &m.Position); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// insertMember appends name unless it is already on the roster and reports
// whether a row was written.
func insertMember(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO members (name, position)
		 SELECT ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM members)
		 WHERE NOT EXISTS (SELECT 1 FROM members WHERE name = ?)`,
		name, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to insert member: %w", err)
	}
	return n > 0, nil
}

// AddMember appends one name, failing with storage.ErrAlreadyExists if it is
// already on the roster.
func (s *Store) AddMember(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	added, err := insertMember(ctx, tx, name)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("member %s: %w", name, storage.ErrAlreadyExists)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddMembers appends names that are not yet on the roster.
func (s *Store) AddMembers(ctx context.Context, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range names {
		if _, err := insertMember(ctx, tx, name); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveMember deletes a name and closes the gap it leaves in the ordering.
func (s *Store) RemoveMember(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, "SELECT position FROM members WHERE name = ?", name).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("member %s: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM members WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE members SET position = position - 1 WHERE position > ?", position); err != nil {
		return fmt.Errorf("failed to reorder members: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// MoveMember moves a name to position and renumbers the roster.
func (s *Store) MoveMember(ctx context.Context, name string, position int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT name FROM members ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan member: %w", err)
		}
		names = append(names, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate members: %w", err)
	}

	reordered, ok := storage.Reorder(names, name, position)
	if !ok {
		return fmt.Errorf("member %s: %w", name, storage.ErrNotFound)
	}

	for i, n := range reordered {
		if _, err := tx.ExecContext(ctx, "UPDATE members SET position = ? WHERE name = ?", i, n); err != nil {
			return fmt.Errorf("failed to update member position: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
