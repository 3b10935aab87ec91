// Package repokit is what repos and services import instead of the store package
package repokit

import "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"

type (
	// Queryer runs statements, the pool or an open transaction
	Queryer = store.RowQuerier
	// TxRunner is the pool, it can also open transactions
	TxRunner = store.TxRunner
	// Clickhouse is the event journal seam
	Clickhouse = store.Clickhouse
)

// Binder makes a repo over q, so one service can use it on the pool and inside Tx
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc adapts a function to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
