package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads a ledger row from the scanner.
// Expected column order: id, studio, person, phone, shoot_date, camera, location, advance, total, balance, status, created_at, updated_at
func scanRecord(s scanner) (*ledger.Record, error) {
	var rec ledger.Record

	var statusStr string

	if err := s.Scan(
		&rec.ID, &rec.Studio, &rec.Person, &rec.Phone, &rec.ShootDate, &rec.Camera, &rec.Location,
		&rec.Advance, &rec.Total, &rec.Balance, &statusStr,
		&rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.Status = ledger.Status(statusStr)

	return &rec, nil
}

const selectRecordColumns = `
	id, studio, person, phone, shoot_date, camera, location,
	advance, total, balance, status, created_at, updated_at
`

func (s *Store) CreateRecord(ctx context.Context, rec *ledger.Record) error {
	query := `
		INSERT INTO ledger_records (studio, person, phone, shoot_date, camera, location, advance, total, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.Studio,
		rec.Person,
		rec.Phone,
		rec.ShootDate,
		rec.Camera,
		rec.Location,
		rec.Advance,
		rec.Total,
		rec.Balance,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating ledger record: %w", err)
	}

	return nil
}

func (s *Store) ListRecords(ctx context.Context) ([]*ledger.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM ledger_records
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ledger records: %w", err)
	}
	defer rows.Close()

	var recs []*ledger.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger record: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger records: %w", err)
	}

	return recs, nil
}

func (s *Store) UpdateRecord(ctx context.Context, rec *ledger.Record) error {
	query := `
		UPDATE ledger_records
		SET studio = $1, person = $2, phone = $3, shoot_date = $4, camera = $5, location = $6,
		    advance = $7, total = $8, balance = $9, status = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.Studio,
		rec.Person,
		rec.Phone,
		rec.ShootDate,
		rec.Camera,
		rec.Location,
		rec.Advance,
		rec.Total,
		rec.Balance,
		rec.Status,
		rec.ID,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ledger.ErrNotFound
		}

		return fmt.Errorf("updating ledger record: %w", err)
	}

	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ledger_records WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting ledger record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting ledger record: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}
