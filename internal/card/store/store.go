package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/card"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanCard reads a card row from the scanner.
// Expected column order: id, customer_identifier, template_type, form_data, design_id, design_colors, shareable_link, customer_slug, image_url, status, created_at
func scanCard(s scanner) (*card.Card, error) {
	var c card.Card

	var (
		formData     []byte
		designColors []byte
		imageURL     sql.NullString
		statusStr    string
	)

	if err := s.Scan(
		&c.ID, &c.CustomerIdentifier, &c.TemplateType, &formData,
		&c.DesignID, &designColors, &c.ShareableLink, &c.CustomerSlug,
		&imageURL, &statusStr, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.FormData = json.RawMessage(formData)
	c.Status = card.Status(statusStr)

	if designColors != nil {
		c.DesignColors = json.RawMessage(designColors)
	}

	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}

	return &c, nil
}

const selectCardColumns = `
	id, customer_identifier, template_type, form_data, design_id, design_colors,
	shareable_link, customer_slug, image_url, status, created_at
`

func (s *Store) CreateCard(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO cards (customer_identifier, template_type, form_data, design_id, design_colors, shareable_link, customer_slug, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, NOW()))
		RETURNING id, created_at
	`

	var createdAt *time.Time
	if !c.CreatedAt.IsZero() {
		createdAt = &c.CreatedAt
	}

	var designColors []byte
	if c.DesignColors != nil {
		designColors = []byte(c.DesignColors)
	}

	err := s.db.QueryRowContext(ctx, query,
		c.CustomerIdentifier,
		c.TemplateType,
		[]byte(c.FormData),
		c.DesignID,
		designColors,
		c.ShareableLink,
		c.CustomerSlug,
		c.Status,
		createdAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, id uuid.UUID) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards WHERE id = $1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card: %w", err)
	}

	return c, nil
}

// FindBySlug matches customer_slug exactly, case-insensitively. Slugs are not
// guaranteed unique, so the most recently issued card wins.
func (s *Store) FindBySlug(ctx context.Context, slug string) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + `
		FROM cards
		WHERE LOWER(customer_slug) = LOWER($1)
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("finding card by slug: %w", err)
	}

	return c, nil
}

// FindBySlugPattern is the legacy fallback: a single disjunctive query where
// any clause selects the card. The hyphen-stripped clause compares both sides
// without hyphens so "janedoe42" still finds a link ending in "jane-doe-42".
func (s *Store) FindBySlugPattern(ctx context.Context, slug string) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + `
		FROM cards
		WHERE shareable_link ILIKE '%' || $1 || '%'
		   OR customer_slug ILIKE '%' || $1 || '%'
		   OR REPLACE(shareable_link, '-', '') ILIKE '%' || REPLACE($1, '-', '') || '%'
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("finding card by slug pattern: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context) ([]*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*card.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}

	return cards, nil
}

func (s *Store) SampleLinks(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT shareable_link FROM cards ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("sampling links: %w", err)
	}
	defer rows.Close()

	var links []string

	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}

		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating links: %w", err)
	}

	return links, nil
}
