package main

import (
	"net/http"
	"os"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/api"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/config"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/logging"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/pokeapi"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Configuration file is optional. Path may be provided via the
	// POKEHELPER_CONFIG env var; without it the built-in defaults apply.
	configPath := os.Getenv(constants.EnvConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid configuration", err, logging.Fields{"config_path": configPath})
	}
	logging.SetDebugEnabled(cfg.Trace)

	// Allow the DB path to be configured via POKEHELPER_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDatabasePath)
	if dbPath == "" {
		dbPath = "./data/battles.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	dex := pokeapi.NewClient(cfg.PokeAPIBaseURL, cfg.PokeAPITimeout, repo)
	handler := api.NewBattleHandler(repo, dex, cfg)

	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Pokemon Run and Bun Helper API"})
	})

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteParseShowdown, handler.ParseShowdown)
		apiRoutes.POST(constants.RouteSimulateTurn, handler.SimulateTurn)
		apiRoutes.POST(constants.RouteSearch, handler.Search)
		apiRoutes.POST(constants.RouteStrategy, handler.BattleStrategy)
		apiRoutes.GET(constants.RouteBattles, handler.ListBattles)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
