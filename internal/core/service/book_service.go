package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

// BookService orchestrates Book lookups and lifecycle changes.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

func (s *BookService) FindAll(ctx context.Context, page ports.PageRequest) (*ports.BookPage, error) {
	s.logger.Debug().Int("page", page.Page).Int("size", page.Size).Msg("finding all books")

	items, total, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return bookPage(items, total, page), nil
}

func (s *BookService) FindByTitle(ctx context.Context, title string, page ports.PageRequest) (*ports.BookPage, error) {
	s.logger.Debug().Str("title", title).Msg("finding books by title")

	items, total, err := s.repo.FindByTitle(ctx, title, page)
	if err != nil {
		return nil, err
	}
	return bookPage(items, total, page), nil
}

func (s *BookService) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, domain.ErrRequiredObjectIsNull
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

func (s *BookService) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, domain.ErrRequiredObjectIsNull
	}

	existing, err := s.repo.FindByID(ctx, book.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = book.Title
	existing.Author = book.Author
	existing.LaunchDate = book.LaunchDate
	existing.Price = book.Price

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", updated.ID).Msg("book updated")
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("book deleted")
	return nil
}

func bookPage(items []domain.Book, total int64, page ports.PageRequest) *ports.BookPage {
	return &ports.BookPage{
		Items:         items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
	}
}
