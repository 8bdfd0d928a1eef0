package handler

import (
	"net/http"

	"github.com/vfg2006/sales-gamification-api/internal/api/handler/router"
	"github.com/vfg2006/sales-gamification-api/internal/scheduler"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/configuring"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-gamification-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Deals(service dealing.DealService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/deals",
			Method:      http.MethodPost,
			Handler:     CreateDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals",
			Method:      http.MethodGet,
			Handler:     ListDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodGet,
			Handler:     GetDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/deals/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/deals/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Points(service dealing.DealService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/points",
			Method:      http.MethodGet,
			Handler:     GetPointsBalance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/points/redeem",
			Method:      http.MethodPost,
			Handler:     RedeemPoints(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ranking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetActiveRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ranking/criterias/:id",
			Method:      http.MethodGet,
			Handler:     GetRankingByCriteria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Configs retorna as rotas de administração das configurações de taxas e critérios
func Configs(service configuring.ConfigService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/configs/regions",
			Method:      http.MethodGet,
			Handler:     ListRegionConfigs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/configs/regions",
			Method:      http.MethodPost,
			Handler:     UpsertRegionConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/configs/points",
			Method:      http.MethodGet,
			Handler:     ListPointsConfigs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/configs/points",
			Method:      http.MethodPost,
			Handler:     UpsertPointsConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/criterias",
			Method:      http.MethodGet,
			Handler:     ListCriterias(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/criterias",
			Method:      http.MethodPost,
			Handler:     CreateCriteria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/criterias/:id/activate",
			Method:      http.MethodPost,
			Handler:     ActivateCriteria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Recalculation(service *scheduler.RecalculationSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/recalculation/run",
			Method:      http.MethodPost,
			Handler:     RunRecalculation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/recalculation/status",
			Method:      http.MethodGet,
			Handler:     GetRecalculationStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
