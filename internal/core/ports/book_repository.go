package ports

import (
	"context"

	"github.com/starcode/library-api/internal/core/domain"
)

// BookRepository defines persistence operations for Book records.
type BookRepository interface {
	FindAll(ctx context.Context, page PageRequest) ([]domain.Book, int64, error)
	FindByTitle(ctx context.Context, title string, page PageRequest) ([]domain.Book, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id int64) error
}
