package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Store is the gorm handle shared by all services together with a single
// writer lock: at most one mutation (status transition, occupancy change,
// catalog edit) is applied at a time.
type Store struct {
	DB       *gorm.DB
	Now      func() time.Time
	Location *time.Location

	mu sync.Mutex
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		DB:       db,
		Now:      time.Now,
		Location: time.Local,
	}
}

// Write runs fn in a transaction while holding the writer lock. fn must use
// tx only; the pool has a single connection.
func (s *Store) Write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.DB.WithContext(ctx).Transaction(fn)
}

func (s *Store) Read(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}
