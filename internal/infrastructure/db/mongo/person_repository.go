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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const personCollection = "person"

type PersonRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewPersonRepository(db *mongo.Database) *PersonRepository {
	return &PersonRepository{coll: db.Collection(personCollection), seq: newSequence(db)}
}

type mongoPerson struct {
	ID        int64  `bson:"_id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Address   string `bson:"address"`
	Gender    string `bson:"gender"`
	Enabled   bool   `bson:"enabled"`
}

// personSortFields maps API sort field names to document keys. Unknown
// fields fall back to _id so a bad sort never errors the query.
var personSortFields = map[string]string{
	"id":        "_id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"address":   "address",
	"gender":    "gender",
}

func (r *PersonRepository) FindAll(ctx context.Context, page ports.PageRequest) ([]domain.Person, int64, error) {
	return r.findPaged(ctx, bson.M{}, page)
}

func (r *PersonRepository) FindByFirstName(ctx context.Context, firstName string, page ports.PageRequest) ([]domain.Person, int64, error) {
	filter := bson.M{"first_name": primitive.Regex{Pattern: regexp.QuoteMeta(firstName), Options: "i"}}
	return r.findPaged(ctx, filter, page)
}

func (r *PersonRepository) findPaged(ctx context.Context, filter bson.M, page ports.PageRequest) ([]domain.Person, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count persons: %w", err)
	}

	cursor, err := r.coll.Find(ctx, filter, pageOptions(page, personSortFields))
	if err != nil {
		return nil, 0, fmt.Errorf("find persons: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPerson
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode persons: %w", err)
	}

	persons := make([]domain.Person, len(docs))
	for i, d := range docs {
		persons[i] = d.toDomain()
	}
	return persons, total, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPerson
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, personCollection)
	if err != nil {
		return nil, err
	}

	doc := fromPerson(person)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}

	out := doc.toDomain()
	return &out, nil
}

func (r *PersonRepository) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromPerson(person)
	doc.ID = person.ID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": person.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update person: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrResourceNotFound
	}

	out := doc.toDomain()
	return &out, nil
}

// Disable sets enabled=false in a single targeted update, leaving every
// other field as-is.
func (r *PersonRepository) Disable(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"enabled": false}})
	if err != nil {
		return fmt.Errorf("disable person: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the paged listings.
func (r *PersonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "first_name", Value: 1}}},
		{Keys: bson.D{{Key: "last_name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func fromPerson(p *domain.Person) mongoPerson {
	return mongoPerson{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		Enabled:   p.Enabled,
	}
}

func (d mongoPerson) toDomain() domain.Person {
	return domain.Person{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Address:   d.Address,
		Gender:    d.Gender,
		Enabled:   d.Enabled,
	}
}

// pageOptions translates a PageRequest into find options for the given
// sort field mapping.
func pageOptions(page ports.PageRequest, sortFields map[string]string) *options.FindOptions {
	key, ok := sortFields[page.SortField]
	if !ok {
		key = "_id"
	}
	dir := 1
	if page.Direction == ports.DirectionDesc {
		dir = -1
	}

	return options.Find().
		SetSort(bson.D{{Key: key, Value: dir}}).
		SetSkip(int64(page.Page) * int64(page.Size)).
		SetLimit(int64(page.Size))
}
