package service

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

type stubPersonRepo struct {
	persons map[int64]*domain.Person
	nextID  int64
}

func newStubPersonRepo() *stubPersonRepo {
	return &stubPersonRepo{persons: make(map[int64]*domain.Person)}
}

func (r *stubPersonRepo) all() []domain.Person {
	out := make([]domain.Person, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubPersonRepo) FindAll(_ context.Context, _ ports.PageRequest) ([]domain.Person, int64, error) {
	items := r.all()
	return items, int64(len(items)), nil
}

func (r *stubPersonRepo) FindByFirstName(_ context.Context, firstName string, _ ports.PageRequest) ([]domain.Person, int64, error) {
	var items []domain.Person
	for _, p := range r.all() {
		if p.FirstName == firstName {
			items = append(items, p)
		}
	}
	return items, int64(len(items)), nil
}

func (r *stubPersonRepo) FindByID(_ context.Context, id int64) (*domain.Person, error) {
	p, ok := r.persons[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPersonRepo) Create(_ context.Context, person *domain.Person) (*domain.Person, error) {
	r.nextID++
	clone := *person
	clone.ID = r.nextID
	r.persons[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPersonRepo) Update(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if _, ok := r.persons[person.ID]; !ok {
		return nil, domain.ErrResourceNotFound
	}
	clone := *person
	r.persons[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPersonRepo) Disable(_ context.Context, id int64) error {
	p, ok := r.persons[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	p.Enabled = false
	return nil
}

func (r *stubPersonRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.persons[id]; !ok {
		return domain.ErrResourceNotFound
	}
	delete(r.persons, id)
	return nil
}

func TestPersonService_CreateAssignsIDAndEnables(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Person{
		FirstName: "James",
		LastName:  "Gosling",
		Address:   "Calgary, Canadá",
		Gender:    "Male",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected positive id, got %d", created.ID)
	}
	if !created.Enabled {
		t.Fatalf("expected new person to be enabled")
	}
}

func TestPersonService_CreateNil(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), nil); err != domain.ErrRequiredObjectIsNull {
		t.Fatalf("expected ErrRequiredObjectIsNull, got %v", err)
	}
}

func TestPersonService_UpdateNil(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), nil); err != domain.ErrRequiredObjectIsNull {
		t.Fatalf("expected ErrRequiredObjectIsNull, got %v", err)
	}
}

func TestPersonService_FindByIDNotFound(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	if _, err := svc.FindByID(context.Background(), 42); err != domain.ErrResourceNotFound {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestPersonService_DisableThenUpdateKeepsDisabled(t *testing.T) {
	repo := newStubPersonRepo()
	svc := NewPersonService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Person{
		FirstName: "James",
		LastName:  "Gosling",
		Address:   "Calgary, Canadá",
		Gender:    "Male",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	disabled, err := svc.Disable(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Disable returned error: %v", err)
	}
	if disabled.Enabled {
		t.Fatalf("expected enabled=false after disable")
	}
	if disabled.FirstName != "James" || disabled.LastName != "Gosling" ||
		disabled.Address != "Calgary, Canadá" || disabled.Gender != "Male" {
		t.Fatalf("disable changed unrelated fields: %+v", disabled)
	}

	updated, err := svc.Update(context.Background(), &domain.Person{
		ID:        created.ID,
		FirstName: "James",
		LastName:  "Hetfield",
		Address:   "Calgary, Canadá",
		Gender:    "Male",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.LastName != "Hetfield" {
		t.Fatalf("last name not updated: %+v", updated)
	}
	if updated.Enabled {
		t.Fatalf("update must not resurrect the enabled flag")
	}
}

func TestPersonService_DisableNotFound(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	if _, err := svc.Disable(context.Background(), 7); err != domain.ErrResourceNotFound {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestPersonService_DeleteNotFound(t *testing.T) {
	svc := NewPersonService(newStubPersonRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 7); err != domain.ErrResourceNotFound {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestPersonService_FindAllPageMetadata(t *testing.T) {
	repo := newStubPersonRepo()
	svc := NewPersonService(repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), &domain.Person{FirstName: "P"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := svc.FindAll(context.Background(), ports.PageRequest{Page: 0, Size: 2, SortField: "firstName", Direction: ports.DirectionAsc})
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if page.TotalElements != 5 {
		t.Fatalf("expected 5 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
}
