package database

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// Client defines a type-safe database client for records of type T. It
// abstracts the underlying SurrealDB driver so stores can be tested against
// an in-memory implementation.
type Client[T any] interface {
	// Create inserts a new record into the specified table with the given data.
	Create(ctx context.Context, table string, data any) (*T, error)

	// Select retrieves a record by its full ID (e.g., "user:123").
	// Returns nil when no record exists with the given ID.
	Select(ctx context.Context, id string) (*T, error)

	// Update merges data into an existing record by its full ID.
	Update(ctx context.Context, id string, data any) (*T, error)

	// Delete removes a record by its full ID.
	Delete(ctx context.Context, id string) error

	// Query executes a raw query with $param placeholders and returns all results.
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)

	// QueryOne executes a raw query and returns a single result, or nil, nil
	// when nothing matches.
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)

	// Execute runs a query that doesn't return rows the caller needs.
	Execute(ctx context.Context, query string, params map[string]any) error
}

// NewClient creates a new type-safe client that wraps the SurrealDB connection.
func NewClient[T any](db *surrealdb.DB) Client[T] {
	return &surrealClient[T]{db: db}
}

type surrealClient[T any] struct {
	db *surrealdb.DB
}

func (c *surrealClient[T]) Create(ctx context.Context, table string, data any) (*T, error) {
	query := fmt.Sprintf("CREATE %s CONTENT $data", table)
	return QueryOne[T](ctx, c.db, query, map[string]any{"data": data})
}

func (c *surrealClient[T]) Select(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT * FROM %s", id)
	return QueryOne[T](ctx, c.db, query, nil)
}

func (c *surrealClient[T]) Update(ctx context.Context, id string, data any) (*T, error) {
	query := fmt.Sprintf("UPDATE %s MERGE $data", id)
	return QueryOne[T](ctx, c.db, query, map[string]any{"data": data})
}

func (c *surrealClient[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE %s", id)
	return Execute(ctx, c.db, query, nil)
}

func (c *surrealClient[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	return Query[T](ctx, c.db, query, params)
}

func (c *surrealClient[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	return QueryOne[T](ctx, c.db, query, params)
}

func (c *surrealClient[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	return Execute(ctx, c.db, query, params)
}
