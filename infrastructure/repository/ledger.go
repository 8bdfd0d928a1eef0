package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-gamification-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

const (
	pointsLedgerTable = "points_ledger"
	goalsLedgerTable  = "goals_ledger"
)

// UserGoalsSum é a soma de metas por usuário usada pelo ranking top_goals
type UserGoalsSum struct {
	UserID int
	Goals  decimal.Decimal
}

// LedgerRepository gerencia os extratos de pontos e metas. Lançamentos nunca
// são atualizados: o recálculo remove e recria, mantendo o extrato auditável.
// Os métodos que recebem tx participam da transação de aprovação/recálculo;
// tx nulo executa direto na conexão
type LedgerRepository interface {
	InsertPointsEntry(tx *sql.Tx, entry *domain.PointsLedgerEntry) error
	InsertGoalsEntry(tx *sql.Tx, entry *domain.GoalsLedgerEntry) error
	DeleteEntriesByDeal(tx *sql.Tx, dealID string) error
	DeletePointsEntriesByDeal(tx *sql.Tx, dealID string) error
	CountPointsEntriesByDeal(dealID string) (int, error)
	SumPointsByUser(userID int) (int, error)
	ListPointsEntriesByUser(userID int) ([]*domain.PointsLedgerEntry, error)
	SumGoalsByUser(startDate, endDate *time.Time) ([]*UserGoalsSum, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// executor abstrai *sql.DB e *sql.Tx para os métodos que podem rodar dentro
// ou fora de uma transação
type executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func (r *ledgerRepository) executor(tx *sql.Tx) executor {
	if tx != nil {
		return tx
	}
	return r.conn.DB
}

func (r *ledgerRepository) InsertPointsEntry(tx *sql.Tx, entry *domain.PointsLedgerEntry) error {
	query, args, err := squirrel.
		Insert(pointsLedgerTable).
		Columns("id", "user_id", "deal_id", "points", "description").
		Values(entry.ID, entry.UserID, entry.DealID, entry.Points, entry.Description).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.executor(tx).Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir lançamento de pontos: %w", err)
	}

	return nil
}

func (r *ledgerRepository) InsertGoalsEntry(tx *sql.Tx, entry *domain.GoalsLedgerEntry) error {
	query, args, err := squirrel.
		Insert(goalsLedgerTable).
		Columns("id", "user_id", "deal_id", "goals", "month", "year", "region_config_id", "description").
		Values(entry.ID, entry.UserID, entry.DealID, entry.Goals, entry.Month, entry.Year, entry.RegionConfigID, entry.Description).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.executor(tx).Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir lançamento de metas: %w", err)
	}

	return nil
}

// DeleteEntriesByDeal remove todos os lançamentos de pontos e metas da
// negociação. Usado antes de regravar os acúmulos, nunca isoladamente
func (r *ledgerRepository) DeleteEntriesByDeal(tx *sql.Tx, dealID string) error {
	if err := r.DeletePointsEntriesByDeal(tx, dealID); err != nil {
		return err
	}

	query, args, err := squirrel.
		Delete(goalsLedgerTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.executor(tx).Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir lançamentos de metas: %w", err)
	}

	return nil
}

func (r *ledgerRepository) DeletePointsEntriesByDeal(tx *sql.Tx, dealID string) error {
	query, args, err := squirrel.
		Delete(pointsLedgerTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.executor(tx).Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir lançamentos de pontos: %w", err)
	}

	return nil
}

func (r *ledgerRepository) CountPointsEntriesByDeal(dealID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(pointsLedgerTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos: %w", err)
	}

	return count, nil
}

// SumPointsByUser retorna o saldo de pontos do usuário: soma de todos os
// lançamentos, incluindo resgates (deltas negativos)
func (r *ledgerRepository) SumPointsByUser(userID int) (int, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(points), 0)").
		From(pointsLedgerTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar pontos: %w", err)
	}

	return total, nil
}

func (r *ledgerRepository) ListPointsEntriesByUser(userID int) ([]*domain.PointsLedgerEntry, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "deal_id", "points", "description", "created_at").
		From(pointsLedgerTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PointsLedgerEntry, 0)
	for rows.Next() {
		entry := &domain.PointsLedgerEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.DealID,
			&entry.Points,
			&entry.Description,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// SumGoalsByUser soma as metas por usuário. A janela de datas, quando
// informada, é aplicada sobre o mês/ano de atribuição dos lançamentos
func (r *ledgerRepository) SumGoalsByUser(startDate, endDate *time.Time) ([]*UserGoalsSum, error) {
	queryBuilder := squirrel.
		Select("user_id", "COALESCE(SUM(goals), 0) AS goals").
		From(goalsLedgerTable).
		GroupBy("user_id").
		OrderBy("user_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		queryBuilder = queryBuilder.Where(
			squirrel.GtOrEq{"(year * 100 + month)": startDate.Year()*100 + int(startDate.Month())},
		)
	}

	if endDate != nil {
		queryBuilder = queryBuilder.Where(
			squirrel.LtOrEq{"(year * 100 + month)": endDate.Year()*100 + int(endDate.Month())},
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sums := make([]*UserGoalsSum, 0)
	for rows.Next() {
		sum := &UserGoalsSum{}
		if err := rows.Scan(&sum.UserID, &sum.Goals); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma de metas: %w", err)
		}
		sums = append(sums, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}
