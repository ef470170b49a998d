package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simpletest/user-api/internal/core/domain"
)

// maxTxRetries bounds optimistic-transaction retries when a watched key changes.
const maxTxRetries = 10

// UserStore keeps users in Redis.
//
// Keys (with prefix p):
//
//	p:users:seq    INCR counter for ids
//	p:users        hash id → JSON record
//	p:users:email  hash email → id
//
// Mutations WATCH the record and email hashes so the uniqueness check and the
// write commit together or retry.
type UserStore struct {
	client   *redis.Client
	seqKey   string
	dataKey  string
	emailKey string
}

// NewUserStore creates a UserStore whose keys start with prefix.
func NewUserStore(client *redis.Client, prefix string) *UserStore {
	return &UserStore{
		client:   client,
		seqKey:   prefix + ":users:seq",
		dataKey:  prefix + ":users",
		emailKey: prefix + ":users:email",
	}
}

// record is the stored form; the id lives in the hash field.
type record struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toRecord(u *domain.User) record {
	return record{
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func (r record) toUser(id int64) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Role:      domain.Role(r.Role),
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func decodeUser(field, raw string) (*domain.User, error) {
	id, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode user id %q: %w", field, err)
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode user %d: %w", id, err)
	}
	return rec.toUser(id), nil
}

// Ping checks connectivity.
func (s *UserStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	payload, err := json.Marshal(toRecord(u))
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	var created *domain.User
	err = s.transact(ctx, func(tx *redis.Tx) error {
		taken, err := tx.HExists(ctx, s.emailKey, u.Email).Result()
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailConflict
		}

		// Ids consumed by an aborted transaction are skipped, never reused.
		id, err := tx.Incr(ctx, s.seqKey).Result()
		if err != nil {
			return err
		}
		field := strconv.FormatInt(id, 10)

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, s.dataKey, field, payload)
			p.HSet(ctx, s.emailKey, u.Email, field)
			return nil
		})
		if err != nil {
			return err
		}

		created = u.Clone()
		created.ID = id
		return nil
	}, s.emailKey)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	field := strconv.FormatInt(id, 10)
	raw, err := s.client.HGet(ctx, s.dataKey, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return decodeUser(field, raw)
}

// List loads the whole hash and filters in process; the directory is small.
func (s *UserStore) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*domain.User, 0, len(all))
	for _, u := range all {
		if filter.Matches(u) {
			matched = append(matched, u)
		}
	}
	return filter.Paginate(matched), int64(len(matched)), nil
}

func (s *UserStore) Update(ctx context.Context, id int64, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	field := strconv.FormatInt(id, 10)

	var updated *domain.User
	err := s.transact(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, s.dataKey, field).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrUserNotFound
			}
			return err
		}
		u, err := decodeUser(field, raw)
		if err != nil {
			return err
		}
		oldEmail := u.Email

		if patch.Email != nil && *patch.Email != oldEmail {
			owner, err := tx.HGet(ctx, s.emailKey, *patch.Email).Result()
			switch {
			case err == nil && owner != field:
				return domain.ErrEmailConflict
			case err != nil && !errors.Is(err, redis.Nil):
				return err
			}
		}

		patch.Apply(u, now)
		payload, err := json.Marshal(toRecord(u))
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, s.dataKey, field, payload)
			if u.Email != oldEmail {
				p.HDel(ctx, s.emailKey, oldEmail)
				p.HSet(ctx, s.emailKey, u.Email, field)
			}
			return nil
		})
		if err != nil {
			return err
		}
		updated = u
		return nil
	}, s.dataKey, s.emailKey)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	field := strconv.FormatInt(id, 10)

	return s.transact(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, s.dataKey, field).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrUserNotFound
			}
			return err
		}
		u, err := decodeUser(field, raw)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HDel(ctx, s.dataKey, field)
			p.HDel(ctx, s.emailKey, u.Email)
			return nil
		})
		return err
	}, s.dataKey, s.emailKey)
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	n, err := s.client.HLen(ctx, s.dataKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// all returns every stored user in id order.
func (s *UserStore) all(ctx context.Context) ([]*domain.User, error) {
	raw, err := s.client.HGetAll(ctx, s.dataKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, 0, len(raw))
	for field, payload := range raw {
		u, err := decodeUser(field, payload)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// transact runs fn under WATCH on keys, retrying when another client wins the race.
func (s *UserStore) transact(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("user store: transaction retries exhausted: %w", redis.TxFailedErr)
}
