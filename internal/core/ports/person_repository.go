package ports

import (
	"context"

	"github.com/starcode/library-api/internal/core/domain"
)

// PersonRepository defines persistence operations for Person records.
type PersonRepository interface {
	FindAll(ctx context.Context, page PageRequest) ([]domain.Person, int64, error)
	FindByFirstName(ctx context.Context, firstName string, page PageRequest) ([]domain.Person, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)
	// Disable flips the enabled flag to false with a targeted update
	// that leaves every other field untouched.
	Disable(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
