// @title Carbontrack API
// @description API for the personal carbon footprint tracker "Carbontrack"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/limbo/carbontrack/docs"
	"github.com/limbo/carbontrack/internal/api"
	"github.com/limbo/carbontrack/internal/emissions"
	"github.com/limbo/carbontrack/internal/repository"
	"github.com/limbo/carbontrack/internal/service"
	"github.com/limbo/carbontrack/pkg/config"
	jwtservice "github.com/limbo/carbontrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	level := slog.LevelInfo
	if cfg.GetString("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	factors := emissions.Canonical()
	if path := cfg.GetString("FACTORS_FILE"); path != "" {
		loaded, err := emissions.LoadFactorTable(path)
		if err != nil {
			log.Fatal("loading emission factors error: " + err.Error())
		}
		factors = loaded
	}
	slog.Info("emission factors loaded", slog.String("version", factors.Version))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	records := repository.NewActivityRecordsRepoWithConn(pool)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		ActivityService: service.NewActivityService(records, cfg.GetInt("ELECTRICITY_ENTRY_DAY", 0)),
		ReportService:   service.NewReportService(records, factors),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTTL)),
		RequestTimeout:  cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
