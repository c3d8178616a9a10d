package service

import (
	"context"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/google/uuid"
)

type fakeRunRepo struct {
	mu        sync.Mutex
	runs      map[uuid.UUID]*dmn.Run
	lastLimit int
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[uuid.UUID]*dmn.Run)}
}

func (r *fakeRunRepo) Save(_ context.Context, run *dmn.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = run
	return nil
}

func (r *fakeRunRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, i.ErrRunNotFound
	}
	return run, nil
}

func (r *fakeRunRepo) ByUser(_ context.Context, userID uuid.UUID, limit int) ([]*dmn.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	var runs []*dmn.Run
	for _, run := range r.runs {
		if run.UserID == userID {
			runs = append(runs, run)
		}
	}
	sort.Slice(runs, func(a, b int) bool { return runs[a].CreatedAt.After(runs[b].CreatedAt) })
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	locks   int
	unlocks int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Lock(context.Context, string) (func() error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locks++
	return func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unlocks++
		return nil
	}, nil
}

func (c *fakeCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

type fakeLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *fakeLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*dmn.User)}
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	for _, u := range r.users {
		if u.Username == user.Username && u.ID != user.ID {
			return i.ErrUsernameConflict
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, i.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, i.ErrUserNotFound
}

type fakeTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	t.claims = claims
	t.exp = expTime
	return "token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
