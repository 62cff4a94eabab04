package app

import (
	"github.com/IRaudaS/games-backend/internal/config"
	http_health "github.com/IRaudaS/games-backend/internal/delivery/http/health"
	http_init "github.com/IRaudaS/games-backend/internal/delivery/http/init"
	http_rummy "github.com/IRaudaS/games-backend/internal/delivery/http/rummy"
	http_wheel "github.com/IRaudaS/games-backend/internal/delivery/http/wheel"
	ws_game "github.com/IRaudaS/games-backend/internal/delivery/ws/game"
	infra_gemini "github.com/IRaudaS/games-backend/internal/infra/gemini"
	infra_pg_init "github.com/IRaudaS/games-backend/internal/infra/postgres/init"
	infra_postgres_rummy "github.com/IRaudaS/games-backend/internal/infra/postgres/rummy"
	infra_postgres_wheel "github.com/IRaudaS/games-backend/internal/infra/postgres/wheel"
	infra_redis_codes "github.com/IRaudaS/games-backend/internal/infra/redis/codes"
	infra_redis_init "github.com/IRaudaS/games-backend/internal/infra/redis/init"
	"github.com/IRaudaS/games-backend/internal/service/flavor"
	usecase_rummy "github.com/IRaudaS/games-backend/internal/usecase/rummy"
	usecase_wheel "github.com/IRaudaS/games-backend/internal/usecase/wheel"
)

func Go(cfg *config.Config) {

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	infra_pg_init.MustEnsureSchema(pgConn)

	gemini := infra_gemini.New(cfg.Gemini)
	flavorService := flavor.New(gemini)

	codes := infra_redis_codes.New(redisConn, "game_codes")
	rummyRepository := infra_postgres_rummy.New(pgConn)
	wheelRepository := infra_postgres_wheel.New(pgConn)

	hub := ws_game.NewHub()
	go hub.Run()

	rummyUC := usecase_rummy.New(rummyRepository, codes, flavorService, hub, cfg.Games.DefaultMeldPoints)
	wheelUC := usecase_wheel.New(wheelRepository, codes, flavorService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_health.New(pgConn, redisConn))
	controllerPool.Add(http_rummy.New(rummyUC))
	controllerPool.Add(http_wheel.New(wheelUC))
	controllerPool.Add(ws_game.NewController(hub, rummyUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
