package repository

import "context"

// Transactor runs a function inside a single database transaction. The
// transaction handle travels in the context; repositories resolve it there,
// so every repository call made inside fn joins the same unit of work and
// either all of them commit or none do.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
