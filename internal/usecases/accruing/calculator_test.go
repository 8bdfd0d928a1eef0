package accruing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

func pointsConfig(newCustomer, renewal string) *domain.PointsConfig {
	return &domain.PointsConfig{
		ID:              "PC0001",
		Region:          "Sudeste",
		NewCustomerRate: decimal.RequireFromString(newCustomer),
		RenewalRate:     decimal.RequireFromString(renewal),
		Active:          true,
	}
}

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name     string
		dealType string
		value    string
		cfg      *domain.PointsConfig
		expected int
	}{
		{
			name:     "Venda de cliente novo com divisão exata",
			dealType: domain.DealTypeNewCustomer,
			value:    "50000",
			cfg:      pointsConfig("1000", "1200"),
			expected: 50,
		},
		{
			name:     "Resto da divisão é descartado, nunca arredondado para cima",
			dealType: domain.DealTypeNewCustomer,
			value:    "50999.99",
			cfg:      pointsConfig("1000", "1200"),
			expected: 50,
		},
		{
			name:     "Renovação usa a taxa de renovação",
			dealType: domain.DealTypeRenewal,
			value:    "60000",
			cfg:      pointsConfig("1000", "1200"),
			expected: 50,
		},
		{
			name:     "Tipo desconhecido cai na taxa de cliente novo",
			dealType: "indicacao",
			value:    "50000",
			cfg:      pointsConfig("1000", "1200"),
			expected: 50,
		},
		{
			name:     "Valor zero acumula zero pontos",
			dealType: domain.DealTypeNewCustomer,
			value:    "0",
			cfg:      pointsConfig("1000", "1200"),
			expected: 0,
		},
		{
			name:     "Valor negativo acumula zero pontos",
			dealType: domain.DealTypeNewCustomer,
			value:    "-500",
			cfg:      pointsConfig("1000", "1200"),
			expected: 0,
		},
		{
			name:     "Valor menor que a taxa acumula zero pontos",
			dealType: domain.DealTypeNewCustomer,
			value:    "999.99",
			cfg:      pointsConfig("1000", "1200"),
			expected: 0,
		},
		{
			name:     "Sem configuração ativa acumula zero pontos",
			dealType: domain.DealTypeNewCustomer,
			value:    "50000",
			cfg:      nil,
			expected: 0,
		},
		{
			name:     "Taxa zero acumula zero pontos em vez de dividir por zero",
			dealType: domain.DealTypeNewCustomer,
			value:    "50000",
			cfg:      pointsConfig("0", "1200"),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePoints(tt.dealType, decimal.RequireFromString(tt.value), tt.cfg)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Um valor maior nunca pode render menos pontos com a mesma taxa
func TestCalculatePoints_Monotonicity(t *testing.T) {
	cfg := pointsConfig("1000", "1200")

	previous := 0
	for _, value := range []string{"500", "1000", "1500", "49999", "50000", "50001", "160000"} {
		points := CalculatePoints(domain.DealTypeNewCustomer, decimal.RequireFromString(value), cfg)
		assert.GreaterOrEqual(t, points, previous, "pontos diminuíram para o valor %s", value)
		previous = points
	}
}

func TestCalculateGoals(t *testing.T) {
	cfg := &domain.RegionConfig{
		ID:                  "RC0001",
		Region:              "Sudeste",
		Category:            "Varejo",
		NewCustomerGoalRate: decimal.RequireFromString("2000"),
		RenewalGoalRate:     decimal.RequireFromString("2500"),
		Active:              true,
	}

	tests := []struct {
		name     string
		dealType string
		value    string
		cfg      *domain.RegionConfig
		expected string
	}{
		{
			name:     "Cliente novo divide pelo valor da meta de cliente novo",
			dealType: domain.DealTypeNewCustomer,
			value:    "160000",
			cfg:      cfg,
			expected: "80",
		},
		{
			name:     "Renovação divide pela taxa de renovação",
			dealType: domain.DealTypeRenewal,
			value:    "160000",
			cfg:      cfg,
			expected: "64",
		},
		{
			name:     "Resultado fracionário é preservado sem arredondamento",
			dealType: domain.DealTypeNewCustomer,
			value:    "100000",
			cfg: &domain.RegionConfig{
				NewCustomerGoalRate: decimal.RequireFromString("3000"),
				RenewalGoalRate:     decimal.RequireFromString("3000"),
				Active:              true,
			},
			expected: "33.3333333333333333",
		},
		{
			name:     "Sem configuração resolvida acumula zero metas",
			dealType: domain.DealTypeNewCustomer,
			value:    "160000",
			cfg:      nil,
			expected: "0",
		},
		{
			name:     "Valor não positivo acumula zero metas",
			dealType: domain.DealTypeNewCustomer,
			value:    "-1",
			cfg:      cfg,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateGoals(tt.dealType, decimal.RequireFromString(tt.value), tt.cfg)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(result),
				"esperado %s, obtido %s", tt.expected, result)
		})
	}
}
