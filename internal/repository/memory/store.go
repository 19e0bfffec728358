// Package memory keeps users, folders and links in process memory.
// It backs STORAGE=memory and the service and handler tests.
package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"linkvault/internal/domain/models"
	"linkvault/internal/domain/repositories"

	"github.com/google/uuid"
)

type storedFolder struct {
	models.Folder
	seq uint64
}

type storedLink struct {
	models.Link
	seq uint64
}

// Store is a mutex-guarded in-memory database.
// Use Users, Folders and Links to obtain repository views.
type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User
	folders map[string]storedFolder
	links   map[string]storedLink
	seq     uint64
	now     func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:   make(map[string]models.User),
		folders: make(map[string]storedFolder),
		links:   make(map[string]storedLink),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the user repository view of the store
func (s *Store) Users() repositories.UserRepository { return &userRepository{s: s} }

// Folders returns the folder repository view of the store
func (s *Store) Folders() repositories.FolderRepository { return &folderRepository{s: s} }

// Links returns the link repository view of the store
func (s *Store) Links() repositories.LinkRepository { return &linkRepository{s: s} }

// TransactionManager returns a transaction manager for the store
func (s *Store) TransactionManager() repositories.TransactionManager { return &txManager{s: s} }

// nextID returns a fresh id and insertion sequence. Caller holds s.mu.
func (s *Store) nextID() (string, uint64) {
	s.seq++
	return uuid.NewString(), s.seq
}

type txKey struct{}

// inTx reports whether ctx belongs to a transaction of this store,
// in which case s.mu is already held.
func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock takes the write lock unless ctx runs inside a transaction.
// The returned func releases it.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// rlock is lock for readers.
func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// txManager holds the store's write lock for the whole transaction, so
// no other request observes or interleaves with its writes. A failed
// transaction restores the state captured when it began.
type txManager struct {
	s *Store
}

func (tm *txManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	if tm.s.inTx(ctx) {
		return fn(ctx)
	}

	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()

	users := maps.Clone(tm.s.users)
	folders := maps.Clone(tm.s.folders)
	links := maps.Clone(tm.s.links)

	if err := fn(context.WithValue(ctx, txKey{}, tm.s)); err != nil {
		tm.s.users, tm.s.folders, tm.s.links = users, folders, links
		return err
	}
	return nil
}

// newestFirst sorts by creation time descending, insertion order breaking ties
func newestFirst[T any](items []T, created func(T) time.Time, seq func(T) uint64) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return seq(items[i]) > seq(items[j])
	})
}
