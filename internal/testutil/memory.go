package testutil

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/socialfeed-server/internal/model"
)

// Memory is an in-process store used by scenario tests. It enforces the same
// uniqueness and reference rules as the Postgres schema.
type Memory struct {
	mu      sync.Mutex
	users   map[uuid.UUID]model.User
	follows map[[2]uuid.UUID]model.Follow
	posts   map[uuid.UUID]model.Post
	tick    time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[uuid.UUID]model.User),
		follows: make(map[[2]uuid.UUID]model.Follow),
		posts:   make(map[uuid.UUID]model.Post),
		tick:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Users returns a UserStore view of m.
func (m *Memory) Users() model.UserStore { return memoryUsers{m} }

// Follows returns a FollowStore view of m.
func (m *Memory) Follows() model.FollowStore { return memoryFollows{m} }

// Posts returns a PostStore view of m.
func (m *Memory) Posts() model.PostStore { return memoryPosts{m} }

// next returns a strictly increasing timestamp so edge order is deterministic.
func (m *Memory) next() time.Time {
	m.tick = m.tick.Add(time.Millisecond)
	return m.tick
}

type memoryUsers struct{ m *Memory }

func (s memoryUsers) Create(_ context.Context, user model.User) (model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, u := range s.m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return model.User{}, model.ErrEmailTaken
		}
		if strings.EqualFold(u.Username, user.Username) {
			return model.User{}, model.ErrUsernameTaken
		}
	}
	if _, ok := s.m.users[user.ID]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	s.m.users[user.ID] = user
	return user, nil
}

func (s memoryUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	u, ok := s.m.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s memoryUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	return s.find(func(u model.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s memoryUsers) GetByUsername(_ context.Context, username string) (model.User, error) {
	return s.find(func(u model.User) bool { return strings.EqualFold(u.Username, username) })
}

func (s memoryUsers) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	_, ok := s.m.users[id]
	return ok, nil
}

func (s memoryUsers) find(match func(model.User) bool) (model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, u := range s.m.users {
		if match(u) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

type memoryFollows struct{ m *Memory }

func (s memoryFollows) Create(_ context.Context, followerID, followingID uuid.UUID) (model.Follow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	key := [2]uuid.UUID{followerID, followingID}
	if _, ok := s.m.follows[key]; ok {
		return model.Follow{}, model.ErrAlreadyExists
	}
	_, followerOK := s.m.users[followerID]
	_, followingOK := s.m.users[followingID]
	if !followerOK || !followingOK {
		return model.Follow{}, model.ErrReferenceMissing
	}

	f := model.Follow{FollowerID: followerID, FollowingID: followingID, CreatedAt: s.m.next()}
	s.m.follows[key] = f
	return f, nil
}

func (s memoryFollows) Delete(_ context.Context, followerID, followingID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	key := [2]uuid.UUID{followerID, followingID}
	if _, ok := s.m.follows[key]; !ok {
		return model.ErrNotFound
	}
	delete(s.m.follows, key)
	return nil
}

func (s memoryFollows) Get(_ context.Context, followerID, followingID uuid.UUID) (model.Follow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	f, ok := s.m.follows[[2]uuid.UUID{followerID, followingID}]
	if !ok {
		return model.Follow{}, model.ErrNotFound
	}
	return f, nil
}

func (s memoryFollows) ListFollowers(_ context.Context, userID uuid.UUID) ([]model.Profile, error) {
	return s.list(func(f model.Follow) (uuid.UUID, bool) { return f.FollowerID, f.FollowingID == userID }), nil
}

func (s memoryFollows) ListFollowing(_ context.Context, userID uuid.UUID) ([]model.Profile, error) {
	return s.list(func(f model.Follow) (uuid.UUID, bool) { return f.FollowingID, f.FollowerID == userID }), nil
}

func (s memoryFollows) ListFollowingIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	ids := []uuid.UUID{}
	for _, f := range s.m.follows {
		if f.FollowerID == userID {
			ids = append(ids, f.FollowingID)
		}
	}
	return ids, nil
}

func (s memoryFollows) list(pick func(model.Follow) (uuid.UUID, bool)) []model.Profile {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	edges := []model.Follow{}
	for _, f := range s.m.follows {
		if _, ok := pick(f); ok {
			edges = append(edges, f)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].CreatedAt.After(edges[j].CreatedAt) })

	profiles := make([]model.Profile, 0, len(edges))
	for _, f := range edges {
		id, _ := pick(f)
		profiles = append(profiles, s.m.users[id].Profile())
	}
	return profiles
}

type memoryPosts struct{ m *Memory }

func (s memoryPosts) Create(_ context.Context, post model.Post) (model.Post, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	author, ok := s.m.users[post.AuthorID]
	if !ok {
		return model.Post{}, model.ErrReferenceMissing
	}
	if post.Media == nil {
		post.Media = []model.Media{}
	}
	post.Author = model.Author{ID: author.ID, Username: author.Username, Email: author.Email}
	s.m.posts[post.ID] = post
	return post, nil
}

func (s memoryPosts) GetByID(_ context.Context, id uuid.UUID) (model.Post, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	p, ok := s.m.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	return p, nil
}

func (s memoryPosts) ListByAuthors(_ context.Context, authorIDs []uuid.UUID, limit, offset int) ([]model.Post, int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	authors := make(map[uuid.UUID]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}

	matched := []model.Post{}
	for _, p := range s.m.posts {
		if _, ok := authors[p.AuthorID]; ok {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) > 0
	})

	total := len(matched)
	if offset < 0 || offset >= total {
		return []model.Post{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}
