// Package accruing contém as funções puras de conversão de valor de venda em
// pontos e metas. Nenhuma função deste pacote acessa armazenamento
package accruing

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

// CalculatePoints converte o valor de uma negociação em pontos usando a taxa
// da região (reais por ponto): floor(valor / taxa). Valores ou taxas não
// positivos resultam em 0 pontos, nunca em erro
func CalculatePoints(dealType string, value decimal.Decimal, cfg *domain.PointsConfig) int {
	if cfg == nil || value.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	rate := pointsRateForDealType(dealType, cfg)
	if rate.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	return int(value.Div(rate).IntPart())
}

// CalculateGoals converte o valor de uma negociação em metas usando a taxa da
// configuração regional resolvida. O resultado NÃO é arredondado aqui: o
// arredondamento para duas casas acontece apenas na escrita do lançamento,
// para evitar acúmulo de erro na agregação do ranking
func CalculateGoals(dealType string, value decimal.Decimal, cfg *domain.RegionConfig) decimal.Decimal {
	if cfg == nil || value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	rate := goalRateForDealType(dealType, cfg)
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return value.Div(rate)
}

func pointsRateForDealType(dealType string, cfg *domain.PointsConfig) decimal.Decimal {
	switch dealType {
	case domain.DealTypeNewCustomer:
		return cfg.NewCustomerRate
	case domain.DealTypeRenewal:
		return cfg.RenewalRate
	default:
		// Tipos desconhecidos caem na taxa de cliente novo
		logrus.Warnf("Tipo de negociação desconhecido %q, usando taxa de cliente novo", dealType)
		return cfg.NewCustomerRate
	}
}

func goalRateForDealType(dealType string, cfg *domain.RegionConfig) decimal.Decimal {
	switch dealType {
	case domain.DealTypeRenewal:
		return cfg.RenewalGoalRate
	default:
		return cfg.NewCustomerGoalRate
	}
}
