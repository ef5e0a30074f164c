package ports

import (
	"context"

	"github.com/starcode/library-api/internal/core/domain"
)

// PersonPage is one page of Person records plus the metadata the
// transport layer needs to assemble navigation links.
type PersonPage struct {
	Items         []domain.Person
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

type PersonService interface {
	FindAll(ctx context.Context, page PageRequest) (*PersonPage, error)
	FindByFirstName(ctx context.Context, firstName string, page PageRequest) (*PersonPage, error)
	FindByID(ctx context.Context, id int64) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Disable(ctx context.Context, id int64) (*domain.Person, error)
	Delete(ctx context.Context, id int64) error
}
