package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/apperr"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = apperr.NotFound("ledger record not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	ListRecords(ctx context.Context) ([]*Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries caller-supplied fields. Amounts arrive already coerced;
// missing optional text fields are empty strings.
type CreateParams struct {
	Studio    string
	Person    string
	Phone     string
	ShootDate string
	Camera    string
	Location  string
	Advance   any
	Total     any
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	rec := fromParams(params)

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.ListRecords(ctx)
}

// Update recomputes balance and status from the new params only. A partial
// update that omits total treats it as 0; amounts are never merged with the
// stored record. This is the documented contract, not an oversight.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Record, error) {
	rec := fromParams(params)
	rec.ID = id

	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, id)
}

func fromParams(params CreateParams) *Record {
	advance := CoerceAmount(params.Advance)
	total := CoerceAmount(params.Total)
	balance, status := DeriveFinancials(advance, total)

	return &Record{
		Studio:    params.Studio,
		Person:    params.Person,
		Phone:     params.Phone,
		ShootDate: params.ShootDate,
		Camera:    params.Camera,
		Location:  params.Location,
		Advance:   advance,
		Total:     total,
		Balance:   balance,
		Status:    status,
	}
}
