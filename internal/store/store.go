package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the single MongoDB client shared by every request. The client is
// established lazily on first use and cached; there is no retry or reconnect
// logic and no explicit teardown, a connection failure simply propagates to
// the caller.
//
// Note: the duplicate-email guard in the user service is check-then-act. A
// unique index on the email field would close that race; the collection is
// left unindexed to match the existing deployment.
type Store struct {
	uri      string
	database string

	once sync.Once
	db   *mongo.Database
	err  error
}

func New(uri, database string) *Store {
	return &Store{uri: uri, database: database}
}

// Connect establishes the client exactly once and returns the cached database
// handle on every subsequent call. The first failure is cached as well, so a
// broken store stays broken for the life of the process.
func (s *Store) Connect(ctx context.Context) (*mongo.Database, error) {
	s.once.Do(func() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
		if err != nil {
			s.err = err
			return
		}
		if err := client.Ping(ctx, nil); err != nil {
			s.err = err
			return
		}
		s.db = client.Database(s.database)
	})

	return s.db, s.err
}

// Collection resolves a named collection, connecting first if needed.
func (s *Store) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(name), nil
}
