package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const bookCollection = "book"

type BookRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(bookCollection), seq: newSequence(db)}
}

type mongoBook struct {
	ID         int64      `bson:"_id"`
	Title      string     `bson:"title"`
	Author     string     `bson:"author"`
	LaunchDate *time.Time `bson:"launch_date,omitempty"`
	Price      float64    `bson:"price"`
}

var bookSortFields = map[string]string{
	"id":         "_id",
	"title":      "title",
	"author":     "author",
	"launchDate": "launch_date",
	"price":      "price",
}

func (r *BookRepository) FindAll(ctx context.Context, page ports.PageRequest) ([]domain.Book, int64, error) {
	return r.findPaged(ctx, bson.M{}, page)
}

func (r *BookRepository) FindByTitle(ctx context.Context, title string, page ports.PageRequest) ([]domain.Book, int64, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
	return r.findPaged(ctx, filter, page)
}

func (r *BookRepository) findPaged(ctx context.Context, filter bson.M, page ports.PageRequest) ([]domain.Book, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	cursor, err := r.coll.Find(ctx, filter, pageOptions(page, bookSortFields))
	if err != nil {
		return nil, 0, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoBook
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode books: %w", err)
	}

	books := make([]domain.Book, len(docs))
	for i, d := range docs {
		books[i] = d.toDomain()
	}
	return books, total, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	b := doc.toDomain()
	return &b, nil
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, bookCollection)
	if err != nil {
		return nil, err
	}

	doc := fromBook(book)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	out := doc.toDomain()
	return &out, nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromBook(book)
	doc.ID = book.ID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": book.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrResourceNotFound
	}

	out := doc.toDomain()
	return &out, nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// EnsureIndexes creates the index used by title lookups.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	return err
}

func fromBook(b *domain.Book) mongoBook {
	return mongoBook{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		LaunchDate: b.LaunchDate,
		Price:      b.Price,
	}
}

func (d mongoBook) toDomain() domain.Book {
	return domain.Book{
		ID:         d.ID,
		Title:      d.Title,
		Author:     d.Author,
		LaunchDate: d.LaunchDate,
		Price:      d.Price,
	}
}
