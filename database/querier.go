package database

import (
	"context"
	"database/sql"
)

// Querier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
//
// Repository'ler bu interface'i dependency olarak alır — normal akışta
// *sql.DB geçilir, ileride bir işlem transaction'a sarılmak istenirse
// aynı repository kodu *sql.Tx ile de çalışır.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
