package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// CatalogSource yields the records of the immutable catalog. It is read once at start-up.
type CatalogSource interface {
	LoadCaterers(ctx context.Context) ([]Caterer, error)
}

type BoundaryClient interface {
	Boundaries(ctx context.Context) ([]Boundary, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
