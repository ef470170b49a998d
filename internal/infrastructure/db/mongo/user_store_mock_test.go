package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/simpletest/user-api/internal/core/domain"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newUser(name, email string) *domain.User {
	return &domain.User{Name: name, Email: email, Role: domain.RoleUser, Status: domain.StatusActive, CreatedAt: t0, UpdatedAt: t0}
}

// countReply is the aggregate reply CountDocuments reads.
func countReply(n int64) bson.D {
	return mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func userDoc(id int64, name, email string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "role", Value: "user"},
		{Key: "status", Value: "active"},
		{Key: "created_at", Value: t0},
		{Key: "updated_at", Value: t0},
	}
}

var duplicateKey = mtest.CommandError{Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error collection: test.users index: email_1"}

func TestUserStore_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns the counter value as id", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(
			countReply(0),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "_id", Value: userSequence}, {Key: "seq", Value: int64(3)}}}),
			mtest.CreateSuccessResponse(),
		)

		u, err := s.Create(context.Background(), newUser("김철수", "kim@example.com"))
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), u.ID)
		assert.Equal(mt, "kim@example.com", u.Email)
	})

	mt.Run("existing email is rejected before an id is taken", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(countReply(1))

		_, err := s.Create(context.Background(), newUser("dup", "hong@example.com"))
		assert.ErrorIs(mt, err, domain.ErrEmailConflict)
	})

	mt.Run("duplicate key on insert maps to conflict", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(
			countReply(0),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "_id", Value: userSequence}, {Key: "seq", Value: int64(4)}}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: duplicateKey.Message}),
		)

		_, err := s.Create(context.Background(), newUser("race", "race@example.com"))
		assert.ErrorIs(mt, err, domain.ErrEmailConflict)
	})
}

func TestUserStore_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, userDoc(2, "홍길동", "hong@example.com")))

		u, err := s.FindByID(context.Background(), 2)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), u.ID)
		assert.Equal(mt, t0, u.CreatedAt)
	})

	mt.Run("missing", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		_, err := s.FindByID(context.Background(), 99)
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})
}

func TestUserStore_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	later := t0.Add(time.Minute)

	mt.Run("own email returns the updated record", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		doc := userDoc(2, "홍길동", "hong@example.com")
		doc[6] = bson.E{Key: "updated_at", Value: later}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))

		email := "hong@example.com"
		u, err := s.Update(context.Background(), 2, domain.UserPatch{Email: &email}, later)
		require.NoError(mt, err)
		assert.Equal(mt, "hong@example.com", u.Email)
		assert.Equal(mt, t0, u.CreatedAt)
		assert.Equal(mt, later, u.UpdatedAt)
	})

	mt.Run("email of another user", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(duplicateKey))

		email := "admin@example.com"
		_, err := s.Update(context.Background(), 2, domain.UserPatch{Email: &email}, later)
		assert.ErrorIs(mt, err, domain.ErrEmailConflict)
	})

	mt.Run("missing user", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		name := "X"
		_, err := s.Update(context.Background(), 99, domain.UserPatch{Name: &name}, later)
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})
}

func TestUserStore_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		assert.NoError(mt, s.Delete(context.Background(), 1))
	})

	mt.Run("missing", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		assert.ErrorIs(mt, s.Delete(context.Background(), 1), domain.ErrUserNotFound)
	})
}

func TestUserStore_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second page of one", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		mt.AddMockResponses(
			countReply(2),
			mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, userDoc(2, "홍길동", "hong@example.com")),
		)

		users, total, err := s.List(context.Background(), domain.UserFilter{Page: 2, Limit: 1})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), total)
		require.Len(mt, users, 1)
		assert.Equal(mt, int64(2), users[0].ID)
	})

	mt.Run("out of range page skips the find", func(mt *mtest.T) {
		s := NewUserStore(mt.DB)
		// Only the count reply is queued; a find would fail for lack of a response.
		mt.AddMockResponses(countReply(2))

		users, total, err := s.List(context.Background(), domain.UserFilter{Page: 288230376151711745, Limit: 64})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), total)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})
}
