// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-gamification-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

const (
	dealsTable = "deals"
)

type DealRepository interface {
	CreateDeal(deal *domain.Deal) error
	GetDealByID(dealID string) (*domain.Deal, error)
	GetDealForUpdate(tx *sql.Tx, dealID string) (*domain.Deal, error)
	ListDeals() ([]*domain.Deal, error)
	ListDealsByUser(userID int) ([]*domain.Deal, error)
	UpdateDealDecision(tx *sql.Tx, deal *domain.Deal) error
	UpdateDealPoints(tx *sql.Tx, dealID string, points int) error
	DeleteDeal(dealID string) error
	AggregateApprovedByUser(startDate, endDate *time.Time) ([]*domain.UserDealAggregate, error)
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

var dealColumns = []string{
	"d.id",
	"d.user_id",
	"d.type",
	"d.value",
	"d.status",
	"d.points_earned",
	"d.goals_earned",
	"d.approver_id",
	"d.approved_at",
	"d.close_date",
	"d.created_at",
	"d.updated_at",
}

func (r *dealRepository) CreateDeal(deal *domain.Deal) error {
	query, args, err := squirrel.
		Insert(dealsTable).
		Columns("id", "user_id", "type", "value", "status", "points_earned", "goals_earned", "close_date").
		Values(deal.ID, deal.UserID, deal.Type, deal.Value, deal.Status, deal.PointsEarned, deal.GoalsEarned, deal.CloseDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir negociação: %w", err)
	}

	return nil
}

func (r *dealRepository) GetDealByID(dealID string) (*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable + " d").
		Where(squirrel.Eq{"d.id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	deal, err := r.scanDealRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negociação: %w", err)
	}

	return deal, nil
}

// GetDealForUpdate carrega a negociação dentro da transação com lock de linha
// (FOR UPDATE), serializando aprovação e recálculo concorrentes da mesma
// negociação
func (r *dealRepository) GetDealForUpdate(tx *sql.Tx, dealID string) (*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable + " d").
		Where(squirrel.Eq{"d.id": dealID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	deal, err := r.scanDealRow(tx.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negociação: %w", err)
	}

	return deal, nil
}

func (r *dealRepository) ListDeals() ([]*domain.Deal, error) {
	return r.listDeals(squirrel.
		Select(dealColumns...).
		From(dealsTable + " d").
		OrderBy("d.created_at DESC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *dealRepository) ListDealsByUser(userID int) ([]*domain.Deal, error) {
	return r.listDeals(squirrel.
		Select(dealColumns...).
		From(dealsTable + " d").
		Where(squirrel.Eq{"d.user_id": userID}).
		OrderBy("d.created_at DESC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *dealRepository) listDeals(queryBuilder squirrel.SelectBuilder) ([]*domain.Deal, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := r.scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negociação: %w", err)
		}
		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

// UpdateDealDecision persiste o resultado de uma decisão de aprovação ou
// rejeição: status, pontos, metas, aprovador e data de aprovação
func (r *dealRepository) UpdateDealDecision(tx *sql.Tx, deal *domain.Deal) error {
	query, args, err := squirrel.
		Update(dealsTable).
		Set("status", deal.Status).
		Set("points_earned", deal.PointsEarned).
		Set("goals_earned", deal.GoalsEarned).
		Set("approver_id", deal.ApproverID).
		Set("approved_at", deal.ApprovedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": deal.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = tx.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar negociação: %w", err)
	}

	return nil
}

func (r *dealRepository) UpdateDealPoints(tx *sql.Tx, dealID string, points int) error {
	query, args, err := squirrel.
		Update(dealsTable).
		Set("points_earned", points).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = tx.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar pontos da negociação: %w", err)
	}

	return nil
}

func (r *dealRepository) DeleteDeal(dealID string) error {
	query, args, err := squirrel.
		Delete(dealsTable).
		Where(squirrel.Eq{"id": dealID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir negociação: %w", err)
	}

	return nil
}

// AggregateApprovedByUser agrega as negociações aprovadas por usuário, somando
// pontos ganhos e contando negociações. A janela de datas, quando informada, é
// aplicada sobre a data de aprovação
func (r *dealRepository) AggregateApprovedByUser(startDate, endDate *time.Time) ([]*domain.UserDealAggregate, error) {
	queryBuilder := squirrel.
		Select(
			"u.id",
			"u.name || ' ' || u.lastname AS user_name",
			"u.region",
			"u.category",
			"u.sub_region",
			"u.segment",
			"COALESCE(SUM(d.points_earned), 0) AS points",
			"COUNT(d.id) AS deals",
		).
		From(dealsTable + " d").
		Join("users u ON u.id = d.user_id").
		Where(squirrel.Eq{"d.status": domain.DealStatusApproved}).
		GroupBy("u.id", "u.name", "u.lastname", "u.region", "u.category", "u.sub_region", "u.segment").
		OrderBy("u.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"d.approved_at": *startDate})
	}

	if endDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"d.approved_at": *endDate})
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

	aggregates := make([]*domain.UserDealAggregate, 0)
	for rows.Next() {
		agg := &domain.UserDealAggregate{}
		err := rows.Scan(
			&agg.UserID,
			&agg.UserName,
			&agg.Region,
			&agg.Category,
			&agg.SubRegion,
			&agg.Segment,
			&agg.Points,
			&agg.Deals,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

type dealScanner interface {
	Scan(dest ...interface{}) error
}

func (r *dealRepository) scanDeal(rows *sql.Rows) (*domain.Deal, error) {
	return scanDealFrom(rows)
}

func (r *dealRepository) scanDealRow(row *sql.Row) (*domain.Deal, error) {
	return scanDealFrom(row)
}

func scanDealFrom(s dealScanner) (*domain.Deal, error) {
	deal := &domain.Deal{}

	err := s.Scan(
		&deal.ID,
		&deal.UserID,
		&deal.Type,
		&deal.Value,
		&deal.Status,
		&deal.PointsEarned,
		&deal.GoalsEarned,
		&deal.ApproverID,
		&deal.ApprovedAt,
		&deal.CloseDate,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return deal, nil
}
