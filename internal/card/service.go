package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/apperr"
)

// ErrNotFound is returned when no card matches the given id or slug.
var ErrNotFound = apperr.NotFound("card not found")

// sampleLimit bounds the diagnostic link sample attached to resolution misses.
const sampleLimit = 5

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	CreateCard(ctx context.Context, c *Card) error
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)

	// FindBySlug matches customer_slug exactly, case-insensitively.
	FindBySlug(ctx context.Context, slug string) (*Card, error)
	// FindBySlugPattern is the legacy fallback: case-insensitive substring
	// match against the link, the slug, and the hyphen-stripped link.
	FindBySlugPattern(ctx context.Context, slug string) (*Card, error)

	ListCards(ctx context.Context) ([]*Card, error)
	SampleLinks(ctx context.Context, limit int) ([]string, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type IssueParams struct {
	CustomerIdentifier string          `validate:"required"`
	TemplateType       string          `validate:"required"`
	FormData           json.RawMessage `validate:"required"`
	DesignID           string
	DesignColors       json.RawMessage
	ShareableLink      string `validate:"required,contains=/card/"`

	// CreatedAt is honored when the caller supplies one; the store stamps
	// the insert time otherwise.
	CreatedAt time.Time
}

// Issue validates the params, derives the lookup slug from the shareable link
// and persists the card as active.
func (s *Service) Issue(ctx context.Context, params IssueParams) (*Card, error) {
	if err := s.checkParams(params); err != nil {
		return nil, err
	}

	c := &Card{
		CustomerIdentifier: params.CustomerIdentifier,
		TemplateType:       params.TemplateType,
		FormData:           params.FormData,
		DesignID:           params.DesignID,
		DesignColors:       params.DesignColors,
		ShareableLink:      params.ShareableLink,
		CustomerSlug:       SlugFromLink(params.ShareableLink),
		Status:             StatusActive,
		CreatedAt:          params.CreatedAt,
	}

	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) checkParams(params IssueParams) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating issue params: %w", err)
	}

	var missing []string

	for _, fe := range verrs {
		// A present link that lacks the marker can never be resolved by
		// its own slug, so it is rejected rather than persisted.
		if fe.Tag() == "contains" {
			return apperr.Validation("shareableLink must contain a /card/ segment", "shareableLink")
		}

		missing = append(missing, lowerFirst(fe.Field()))
	}

	return apperr.Validation("missing required fields", missing...)
}

// Resolve finds a card by its public slug. An exact slug match always wins;
// the substring fallback exists for legacy links. Within either tier the most
// recently created card wins.
func (s *Service) Resolve(ctx context.Context, slug string) (*Card, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperr.Validation("slug is required", "slug")
	}

	c, err := s.repo.FindBySlug(ctx, slug)
	if err == nil {
		return c, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c, err = s.repo.FindBySlugPattern(ctx, slug)
	if err == nil {
		return c, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	notFound := apperr.NotFound(fmt.Sprintf("no card matches slug %q", slug))

	// Operator-facing diagnostics only; the HTTP layer strips detail in
	// production responses.
	if links, sampleErr := s.repo.SampleLinks(ctx, sampleLimit); sampleErr == nil && len(links) > 0 {
		notFound = notFound.WithDetail(map[string]any{"sampleLinks": links})
	}

	return nil, notFound
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.repo.GetCard(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Card, error) {
	return s.repo.ListCards(ctx)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
