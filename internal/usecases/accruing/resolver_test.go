package accruing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func regionConfig(id, region, category string, subcategory *string, active bool) *domain.RegionConfig {
	return &domain.RegionConfig{
		ID:                  id,
		Region:              region,
		Category:            category,
		Subcategory:         subcategory,
		NewCustomerGoalRate: decimal.RequireFromString("2000"),
		RenewalGoalRate:     decimal.RequireFromString("2500"),
		Active:              active,
	}
}

func TestResolveRegionConfig(t *testing.T) {
	configs := []*domain.RegionConfig{
		regionConfig("RC0001", "Sudeste", "Varejo", nil, true),
		regionConfig("RC0002", "Sudeste", "Varejo", stringPtr("Capital"), true),
		regionConfig("RC0003", "Sudeste", "Atacado", nil, true),
		regionConfig("RC0004", "Sul", "Varejo", nil, false),
	}

	tests := []struct {
		name       string
		region     string
		category   string
		subRegion  *string
		expectedID string
	}{
		{
			name:       "Região e categoria com subcategoria nula casam com configuração sem subcategoria",
			region:     "Sudeste",
			category:   "Varejo",
			subRegion:  nil,
			expectedID: "RC0001",
		},
		{
			name:       "Subcategoria preenchida exige igualdade exata",
			region:     "Sudeste",
			category:   "Varejo",
			subRegion:  stringPtr("Capital"),
			expectedID: "RC0002",
		},
		{
			name:       "Subcategoria sem configuração correspondente não resolve",
			region:     "Sudeste",
			category:   "Atacado",
			subRegion:  stringPtr("Capital"),
			expectedID: "",
		},
		{
			name:       "Categoria divergente não resolve",
			region:     "Sudeste",
			category:   "Serviços",
			subRegion:  nil,
			expectedID: "",
		},
		{
			name:       "Configuração inativa é ignorada",
			region:     "Sul",
			category:   "Varejo",
			subRegion:  nil,
			expectedID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveRegionConfig(configs, tt.region, tt.category, tt.subRegion)
			if tt.expectedID == "" {
				assert.Nil(t, result)
				return
			}

			if assert.NotNil(t, result) {
				assert.Equal(t, tt.expectedID, result.ID)
			}
		})
	}
}

func TestResolveRegionConfig_EmptyList(t *testing.T) {
	assert.Nil(t, ResolveRegionConfig(nil, "Sudeste", "Varejo", nil))
	assert.Nil(t, ResolveRegionConfig([]*domain.RegionConfig{nil}, "Sudeste", "Varejo", nil))
}
