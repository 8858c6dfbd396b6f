package mock

import (
	"context"

	"github.com/fwojciec/dataminer"
)

var _ dataminer.Store = (*Store)(nil)

// Store is a mock implementation of dataminer.Store.
type Store struct {
	StoreFn func(ctx context.Context, records dataminer.ResultSet, format dataminer.Format, name string) (*dataminer.Output, error)
}

func (s *Store) Store(ctx context.Context, records dataminer.ResultSet, format dataminer.Format, name string) (*dataminer.Output, error) {
	return s.StoreFn(ctx, records, format, name)
}
