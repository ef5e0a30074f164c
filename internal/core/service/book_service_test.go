package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

type stubBookRepo struct {
	books  map[int64]*domain.Book
	nextID int64
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: make(map[int64]*domain.Book)}
}

func (r *stubBookRepo) FindAll(_ context.Context, _ ports.PageRequest) ([]domain.Book, int64, error) {
	out := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBookRepo) FindByTitle(_ context.Context, title string, _ ports.PageRequest) ([]domain.Book, int64, error) {
	var out []domain.Book
	for _, b := range r.books {
		if b.Title == title {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id int64) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	r.nextID++
	clone := *book
	clone.ID = r.nextID
	r.books[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookRepo) Update(_ context.Context, book *domain.Book) (*domain.Book, error) {
	if _, ok := r.books[book.ID]; !ok {
		return nil, domain.ErrResourceNotFound
	}
	clone := *book
	r.books[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return domain.ErrResourceNotFound
	}
	delete(r.books, id)
	return nil
}

func TestBookService_CreateAndUpdate(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), zerolog.Nop())

	launch := time.Date(2017, 11, 29, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &domain.Book{
		Title:      "Docker Deep Dive",
		Author:     "Nigel Poulton",
		LaunchDate: &launch,
		Price:      55.99,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected positive id, got %d", created.ID)
	}

	created.Price = 49.99
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 49.99 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.LaunchDate == nil || !updated.LaunchDate.Equal(launch) {
		t.Fatalf("launch date lost on update: %v", updated.LaunchDate)
	}
}

func TestBookService_NilInputs(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), nil); err != domain.ErrRequiredObjectIsNull {
		t.Fatalf("Create(nil): expected ErrRequiredObjectIsNull, got %v", err)
	}
	if _, err := svc.Update(context.Background(), nil); err != domain.ErrRequiredObjectIsNull {
		t.Fatalf("Update(nil): expected ErrRequiredObjectIsNull, got %v", err)
	}
}

func TestBookService_NotFound(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), zerolog.Nop())

	if _, err := svc.FindByID(context.Background(), 1); err != domain.ErrResourceNotFound {
		t.Fatalf("FindByID: expected ErrResourceNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), &domain.Book{ID: 1}); err != domain.ErrResourceNotFound {
		t.Fatalf("Update: expected ErrResourceNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1); err != domain.ErrResourceNotFound {
		t.Fatalf("Delete: expected ErrResourceNotFound, got %v", err)
	}
}
