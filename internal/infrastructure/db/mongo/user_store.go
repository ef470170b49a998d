package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simpletest/user-api/internal/core/domain"
)

const (
	collectionUsers    = "users"
	collectionCounters = "counters"
	userSequence       = "users"
)

// userDocument is the persisted shape of domain.User.
type userDocument struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Role      string    `bson:"role"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func fromDomain(u *domain.User) userDocument {
	return userDocument{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Role:      domain.Role(d.Role),
		Status:    domain.Status(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// UserStore persists users in MongoDB. Ids come from a counters document
// incremented atomically, so they grow monotonically and are never reused.
type UserStore struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{
		users:    db.Collection(collectionUsers),
		counters: db.Collection(collectionCounters),
	}
}

// EnsureIndexes creates the unique email index the conflict checks rely on.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})
	return err
}

// Ping checks connectivity to the primary.
func (s *UserStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return s.users.Database().Client().Ping(ctx, nil)
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Checked up front so a rejected email does not burn an id; the unique
	// index still catches concurrent inserts.
	n, err := s.users.CountDocuments(ctx, bson.M{"email": u.Email}, options.Count().SetLimit(1))
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if n > 0 {
		return nil, domain.ErrEmailConflict
	}

	id, err := s.nextID(ctx)
	if err != nil {
		return nil, err
	}

	created := u.Clone()
	created.ID = id
	if _, err := s.users.InsertOne(ctx, fromDomain(created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *UserStore) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := s.users.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := []*domain.User{}
	if !filter.InRange(total) {
		return users, total, nil
	}
	skip := int64(filter.Page-1) * int64(filter.Limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := s.users.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, total, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updateSet(patch, now)}, opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrEmailConflict
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return s.users.CountDocuments(ctx, bson.M{})
}

func (s *UserStore) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counterDocument
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": userSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	return c.Seq, nil
}

// listQuery mirrors domain.UserFilter.Matches as a Mongo filter.
func listQuery(filter domain.UserFilter) bson.M {
	query := bson.M{}
	if strings.TrimSpace(filter.Search) != "" {
		query["name"] = bson.M{
			"$regex":   regexp.QuoteMeta(filter.Search),
			"$options": "i",
		}
	}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}
	return query
}

// updateSet builds the $set document for the supplied patch fields.
func updateSet(patch domain.UserPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	return set
}
