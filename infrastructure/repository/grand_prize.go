package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-gamification-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

const (
	criteriasTable = "grand_prize_criterias"
)

// GrandPrizeCriteriaRepository gerencia os critérios de premiação. A regra de
// no máximo um critério ativo no sistema é garantida aqui, na camada de dados:
// toda ativação desativa os demais dentro da mesma transação
type GrandPrizeCriteriaRepository interface {
	CreateCriteria(criteria *domain.GrandPrizeCriteria) error
	GetCriteriaByID(criteriaID string) (*domain.GrandPrizeCriteria, error)
	GetActiveCriteria() (*domain.GrandPrizeCriteria, error)
	ListCriterias() ([]*domain.GrandPrizeCriteria, error)
	ActivateCriteria(criteriaID string) error
}

type grandPrizeCriteriaRepository struct {
	conn *postgres.Connection
}

func NewGrandPrizeCriteriaRepository(conn *postgres.Connection) GrandPrizeCriteriaRepository {
	return &grandPrizeCriteriaRepository{
		conn: conn,
	}
}

var criteriaColumns = []string{
	"c.id",
	"c.name",
	"c.type",
	"c.region",
	"c.segment",
	"c.category",
	"c.sub_region",
	"c.min_points",
	"c.min_deals",
	"c.points_weight",
	"c.deals_weight",
	"c.start_date",
	"c.end_date",
	"c.active",
	"c.created_at",
	"c.updated_at",
}

func (r *grandPrizeCriteriaRepository) CreateCriteria(criteria *domain.GrandPrizeCriteria) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if criteria.Active {
			if err := deactivateAllCriterias(tx); err != nil {
				return err
			}
		}

		query, args, err := squirrel.
			Insert(criteriasTable).
			Columns("id", "name", "type", "region", "segment", "category", "sub_region",
				"min_points", "min_deals", "points_weight", "deals_weight",
				"start_date", "end_date", "active").
			Values(criteria.ID, criteria.Name, criteria.Type, criteria.Region, criteria.Segment,
				criteria.Category, criteria.SubRegion, criteria.MinPoints, criteria.MinDeals,
				criteria.PointsWeight, criteria.DealsWeight, criteria.StartDate, criteria.EndDate,
				criteria.Active).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir critério: %w", err)
		}

		return nil
	})
}

func (r *grandPrizeCriteriaRepository) GetCriteriaByID(criteriaID string) (*domain.GrandPrizeCriteria, error) {
	query, args, err := squirrel.
		Select(criteriaColumns...).
		From(criteriasTable + " c").
		Where(squirrel.Eq{"c.id": criteriaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	criteria, err := scanCriteria(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear critério: %w", err)
	}

	return criteria, nil
}

func (r *grandPrizeCriteriaRepository) GetActiveCriteria() (*domain.GrandPrizeCriteria, error) {
	query, args, err := squirrel.
		Select(criteriaColumns...).
		From(criteriasTable + " c").
		Where(squirrel.Eq{"c.active": true}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	criteria, err := scanCriteria(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear critério: %w", err)
	}

	return criteria, nil
}

func (r *grandPrizeCriteriaRepository) ListCriterias() ([]*domain.GrandPrizeCriteria, error) {
	query, args, err := squirrel.
		Select(criteriaColumns...).
		From(criteriasTable + " c").
		OrderBy("c.created_at DESC").
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

	criterias := make([]*domain.GrandPrizeCriteria, 0)
	for rows.Next() {
		criteria, err := scanCriteria(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear critério: %w", err)
		}
		criterias = append(criterias, criteria)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return criterias, nil
}

// ActivateCriteria ativa o critério desativando todos os outros na mesma
// transação. Ativações concorrentes nunca deixam dois critérios ativos
func (r *grandPrizeCriteriaRepository) ActivateCriteria(criteriaID string) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := deactivateAllCriterias(tx); err != nil {
			return err
		}

		query, args, err := squirrel.
			Update(criteriasTable).
			Set("active", true).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"id": criteriaID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de ativação: %w", err)
		}

		result, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("erro ao ativar critério: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
		}

		if affected == 0 {
			return sql.ErrNoRows
		}

		return nil
	})
}

func deactivateAllCriterias(tx *sql.Tx) error {
	query, args, err := squirrel.
		Update(criteriasTable).
		Set("active", false).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de desativação: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desativar critérios: %w", err)
	}

	return nil
}

type criteriaScanner interface {
	Scan(dest ...interface{}) error
}

func scanCriteria(s criteriaScanner) (*domain.GrandPrizeCriteria, error) {
	criteria := &domain.GrandPrizeCriteria{}

	err := s.Scan(
		&criteria.ID,
		&criteria.Name,
		&criteria.Type,
		&criteria.Region,
		&criteria.Segment,
		&criteria.Category,
		&criteria.SubRegion,
		&criteria.MinPoints,
		&criteria.MinDeals,
		&criteria.PointsWeight,
		&criteria.DealsWeight,
		&criteria.StartDate,
		&criteria.EndDate,
		&criteria.Active,
		&criteria.CreatedAt,
		&criteria.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return criteria, nil
}
