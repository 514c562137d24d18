package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/tesso57/shelfdesk/internal/domain/table"
)

// Source provides the rows of one list screen.
type Source[R table.Record, In any] interface {
	FetchAll(ctx context.Context) ([]R, error)
	CreateOne(ctx context.Context, in In) (R, error)
}

// StaticSource serves an in-memory collection without I/O.
type StaticSource[R table.Record, In any] struct {
	mu    sync.RWMutex
	rows  []R
	build func(In) (R, error)
}

// NewStaticSource returns a source over rows. build turns create input into
// the stored row; nil means creation is unsupported.
func NewStaticSource[R table.Record, In any](rows []R, build func(In) (R, error)) *StaticSource[R, In] {
	return &StaticSource[R, In]{rows: slices.Clone(rows), build: build}
}

// FetchAll returns a copy of the current rows.
func (s *StaticSource[R, In]) FetchAll(ctx context.Context) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rows), nil
}

// CreateOne builds and stores a new row.
func (s *StaticSource[R, In]) CreateOne(ctx context.Context, in In) (R, error) {
	var zero R
	if s.build == nil {
		return zero, ErrCreateUnsupported
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	row, err := s.build(in)
	if err != nil {
		return zero, err
	}
	s.mu.Lock()
	s.rows = append(s.rows, row)
	s.mu.Unlock()
	return row, nil
}
