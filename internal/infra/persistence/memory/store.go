// Package memory is a process-local persistence backend used for development and tests.
//
// Writes are serialized by a single writer lock, which Execute holds for the whole
// transaction. A failed transaction restores the snapshot taken when it began.
// Readers outside a transaction can observe uncommitted writes.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
)

// Store holds every collection of the in-memory backend.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *state
	now     func() time.Time
}

type state struct {
	users  map[string]*entity.User
	auths  map[string]*entity.Authentication
	topics map[string]*entity.Topic
	posts  map[string]map[string]*entity.Post
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: &state{
			users:  map[string]*entity.User{},
			auths:  map[string]*entity.Authentication{},
			topics: map[string]*entity.Topic{},
			posts:  map[string]map[string]*entity.Post{},
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

// write applies fn under the data lock. Outside a transaction it also takes the writer lock.
func (s *Store) write(inTx bool, fn func(st *state) error) error {
	if !inTx {
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.clone()
}

func (s *Store) restore(snap *state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap
}

func (st *state) clone() *state {
	cloned := &state{
		users:  make(map[string]*entity.User, len(st.users)),
		auths:  maps.Clone(st.auths),
		topics: make(map[string]*entity.Topic, len(st.topics)),
		posts:  make(map[string]map[string]*entity.Post, len(st.posts)),
	}
	for id, user := range st.users {
		cloned.users[id] = cloneUser(user)
	}
	for id, topic := range st.topics {
		cloned.topics[id] = topic.Clone()
	}
	for topicID, posts := range st.posts {
		cloned.posts[topicID] = maps.Clone(posts)
	}

	return cloned
}

// transactionManager implements repository.TransactionManager over a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with the writer lock held and rolls back to a snapshot on error or panic.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.writeMu.Lock()
	defer tm.store.writeMu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}

// repositoryFactory hands out repositories that skip the writer lock already held by Execute.
type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) TopicRepo() repository.TopicRepository {
	return &topicRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) PostRepo() repository.PostRepository {
	return &postRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) AuthRepo() repository.AuthRepository {
	return &authRepository{store: f.store, inTx: true}
}
