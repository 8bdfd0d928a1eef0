package accruing

import "github.com/vfg2006/sales-gamification-api/internal/domain"

// ResolveRegionConfig encontra a única configuração regional aplicável ao
// usuário: região e categoria devem bater exatamente e a subcategoria também,
// inclusive no caso em que ambas são nulas. Não há fallback hierárquico entre
// subcategorias: qualquer divergência resulta em nil (configuração não
// resolvida), e o chamador deve tratar como "zero metas acumulam"
func ResolveRegionConfig(configs []*domain.RegionConfig, region, category string, subRegion *string) *domain.RegionConfig {
	for _, cfg := range configs {
		if cfg == nil || !cfg.Active {
			continue
		}

		if cfg.Region != region || cfg.Category != category {
			continue
		}

		if subcategoryMatches(cfg.Subcategory, subRegion) {
			return cfg
		}
	}

	return nil
}

func subcategoryMatches(subcategory, subRegion *string) bool {
	if subcategory == nil && subRegion == nil {
		return true
	}

	if subcategory == nil || subRegion == nil {
		return false
	}

	return *subcategory == *subRegion
}
