package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o contrato mínimo que os repositórios exigem da conexão.
// Connection o satisfaz; os testes podem substituí-lo
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
