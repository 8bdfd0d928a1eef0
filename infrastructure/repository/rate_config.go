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
	regionConfigsTable = "region_configs"
	pointsConfigsTable = "points_configs"
)

// RateConfigRepository dá acesso às configurações de taxas de metas
// (region_configs) e de pontos (points_configs). As configurações não são
// versionadas: alterações só afetam lançamentos futuros ou um recálculo
// explícito
type RateConfigRepository interface {
	ListRegionConfigs() ([]*domain.RegionConfig, error)
	ListActiveRegionConfigs() ([]*domain.RegionConfig, error)
	UpsertRegionConfig(cfg *domain.RegionConfig) error
	ListPointsConfigs() ([]*domain.PointsConfig, error)
	GetActivePointsConfigByRegion(region string) (*domain.PointsConfig, error)
	UpsertPointsConfig(cfg *domain.PointsConfig) error
}

type rateConfigRepository struct {
	conn *postgres.Connection
}

func NewRateConfigRepository(conn *postgres.Connection) RateConfigRepository {
	return &rateConfigRepository{
		conn: conn,
	}
}

func (r *rateConfigRepository) ListRegionConfigs() ([]*domain.RegionConfig, error) {
	return r.listRegionConfigs(squirrel.
		Select(regionConfigColumns()...).
		From(regionConfigsTable + " rc").
		OrderBy("rc.region ASC", "rc.category ASC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *rateConfigRepository) ListActiveRegionConfigs() ([]*domain.RegionConfig, error) {
	return r.listRegionConfigs(squirrel.
		Select(regionConfigColumns()...).
		From(regionConfigsTable + " rc").
		Where(squirrel.Eq{"rc.active": true}).
		OrderBy("rc.region ASC", "rc.category ASC").
		PlaceholderFormat(squirrel.Dollar))
}

func regionConfigColumns() []string {
	return []string{
		"rc.id",
		"rc.region",
		"rc.category",
		"rc.subcategory",
		"rc.new_customer_goal_rate",
		"rc.renewal_goal_rate",
		"rc.monthly_goal_target",
		"rc.active",
		"rc.created_at",
		"rc.updated_at",
	}
}

func (r *rateConfigRepository) listRegionConfigs(queryBuilder squirrel.SelectBuilder) ([]*domain.RegionConfig, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.RegionConfig, 0)
	for rows.Next() {
		cfg := &domain.RegionConfig{}
		err := rows.Scan(
			&cfg.ID,
			&cfg.Region,
			&cfg.Category,
			&cfg.Subcategory,
			&cfg.NewCustomerGoalRate,
			&cfg.RenewalGoalRate,
			&cfg.MonthlyGoalTarget,
			&cfg.Active,
			&cfg.CreatedAt,
			&cfg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração regional: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *rateConfigRepository) UpsertRegionConfig(cfg *domain.RegionConfig) error {
	query := squirrel.StatementBuilder.
		Insert(regionConfigsTable).
		Columns("id", "region", "category", "subcategory", "new_customer_goal_rate", "renewal_goal_rate", "monthly_goal_target", "active").
		Values(cfg.ID, cfg.Region, cfg.Category, cfg.Subcategory, cfg.NewCustomerGoalRate, cfg.RenewalGoalRate, cfg.MonthlyGoalTarget, cfg.Active).
		Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			region = EXCLUDED.region,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			new_customer_goal_rate = EXCLUDED.new_customer_goal_rate,
			renewal_goal_rate = EXCLUDED.renewal_goal_rate,
			monthly_goal_target = EXCLUDED.monthly_goal_target,
			active = EXCLUDED.active,
			updated_at = CURRENT_TIMESTAMP
	`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar configuração regional: %w", err)
	}

	return nil
}

func (r *rateConfigRepository) ListPointsConfigs() ([]*domain.PointsConfig, error) {
	query, args, err := squirrel.
		Select("pc.id", "pc.region", "pc.new_customer_rate", "pc.renewal_rate", "pc.active", "pc.created_at", "pc.updated_at").
		From(pointsConfigsTable + " pc").
		OrderBy("pc.region ASC").
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

	configs := make([]*domain.PointsConfig, 0)
	for rows.Next() {
		cfg, err := scanPointsConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de pontos: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

// GetActivePointsConfigByRegion retorna a configuração de pontos ativa da
// região, ou nil quando não há configuração (não é erro: a negociação
// aprova com zero pontos)
func (r *rateConfigRepository) GetActivePointsConfigByRegion(region string) (*domain.PointsConfig, error) {
	query, args, err := squirrel.
		Select("pc.id", "pc.region", "pc.new_customer_rate", "pc.renewal_rate", "pc.active", "pc.created_at", "pc.updated_at").
		From(pointsConfigsTable + " pc").
		Where(squirrel.Eq{"pc.region": region, "pc.active": true}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg := &domain.PointsConfig{}
	err = r.conn.QueryRow(query, args...).Scan(
		&cfg.ID,
		&cfg.Region,
		&cfg.NewCustomerRate,
		&cfg.RenewalRate,
		&cfg.Active,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de pontos: %w", err)
	}

	return cfg, nil
}

// UpsertPointsConfig salva a configuração de pontos. A ativação desativa a
// configuração ativa anterior da mesma região na mesma transação, garantindo
// no máximo uma ativa por região
func (r *rateConfigRepository) UpsertPointsConfig(cfg *domain.PointsConfig) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if cfg.Active {
			deactivate, deactivateArgs, err := squirrel.
				Update(pointsConfigsTable).
				Set("active", false).
				Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
				Where(squirrel.Eq{"region": cfg.Region, "active": true}).
				Where(squirrel.NotEq{"id": cfg.ID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de desativação: %w", err)
			}

			if _, err := tx.Exec(deactivate, deactivateArgs...); err != nil {
				return fmt.Errorf("erro ao desativar configurações anteriores: %w", err)
			}
		}

		query, args, err := squirrel.StatementBuilder.
			Insert(pointsConfigsTable).
			Columns("id", "region", "new_customer_rate", "renewal_rate", "active").
			Values(cfg.ID, cfg.Region, cfg.NewCustomerRate, cfg.RenewalRate, cfg.Active).
			Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				region = EXCLUDED.region,
				new_customer_rate = EXCLUDED.new_customer_rate,
				renewal_rate = EXCLUDED.renewal_rate,
				active = EXCLUDED.active,
				updated_at = CURRENT_TIMESTAMP
		`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao salvar configuração de pontos: %w", err)
		}

		return nil
	})
}

func scanPointsConfig(rows *sql.Rows) (*domain.PointsConfig, error) {
	cfg := &domain.PointsConfig{}

	err := rows.Scan(
		&cfg.ID,
		&cfg.Region,
		&cfg.NewCustomerRate,
		&cfg.RenewalRate,
		&cfg.Active,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
