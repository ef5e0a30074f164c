package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

// PersonService orchestrates Person lookups and lifecycle changes.
type PersonService struct {
	repo   ports.PersonRepository
	logger zerolog.Logger
}

func NewPersonService(repo ports.PersonRepository, logger zerolog.Logger) *PersonService {
	return &PersonService{repo: repo, logger: logger}
}

func (s *PersonService) FindAll(ctx context.Context, page ports.PageRequest) (*ports.PersonPage, error) {
	s.logger.Debug().Int("page", page.Page).Int("size", page.Size).Msg("finding all persons")

	items, total, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return personPage(items, total, page), nil
}

func (s *PersonService) FindByFirstName(ctx context.Context, firstName string, page ports.PageRequest) (*ports.PersonPage, error) {
	s.logger.Debug().Str("first_name", firstName).Msg("finding persons by first name")

	items, total, err := s.repo.FindByFirstName(ctx, firstName, page)
	if err != nil {
		return nil, err
	}
	return personPage(items, total, page), nil
}

func (s *PersonService) FindByID(ctx context.Context, id int64) (*domain.Person, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person == nil {
		return nil, domain.ErrRequiredObjectIsNull
	}

	person.Enabled = true
	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Msg("person created")
	return created, nil
}

// Update overwrites the mutable fields of an existing person. The
// enabled flag is deliberately not part of the overwrite: a disabled
// person stays disabled through updates.
func (s *PersonService) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person == nil {
		return nil, domain.ErrRequiredObjectIsNull
	}

	existing, err := s.repo.FindByID(ctx, person.ID)
	if err != nil {
		return nil, err
	}

	existing.FirstName = person.FirstName
	existing.LastName = person.LastName
	existing.Address = person.Address
	existing.Gender = person.Gender

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", updated.ID).Msg("person updated")
	return updated, nil
}

// Disable flips enabled to false via a targeted update, then re-fetches
// the record. The re-fetch is a separate read and may observe a
// concurrent writer.
func (s *PersonService) Disable(ctx context.Context, id int64) (*domain.Person, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Disable(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("person disabled")
	return s.repo.FindByID(ctx, id)
}

func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("person deleted")
	return nil
}

func personPage(items []domain.Person, total int64, page ports.PageRequest) *ports.PersonPage {
	return &ports.PersonPage{
		Items:         items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
	}
}
