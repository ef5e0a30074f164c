package ports

import (
	"context"

	"github.com/starcode/library-api/internal/core/domain"
)

// BookPage is one page of Book records plus pagination metadata.
type BookPage struct {
	Items         []domain.Book
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

type BookService interface {
	FindAll(ctx context.Context, page PageRequest) (*BookPage, error)
	FindByTitle(ctx context.Context, title string, page PageRequest) (*BookPage, error)
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id int64) error
}
