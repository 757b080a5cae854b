package main

import (
	"errors"
	"flag"
	"net/url"

	"community_api/internal/pkg/config"
	"community_api/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 means all")
	force := flag.Int("force", -1, "force the schema version and clear the dirty flag")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	log, err := logger.Init("debug")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	m, err := migrate.New(*source, migrationURL(cfg.Database))
	if err != nil {
		log.Fatal("Failed to init migrate", zap.Error(err))
	}
	defer m.Close()

	if *force >= 0 {
		if err := m.Force(*force); err != nil {
			log.Fatal("Failed to force version", zap.Int("version", *force), zap.Error(err))
		}
		log.Info("Forced version", zap.Int("version", *force))
		return
	}

	switch {
	case *steps != 0 && *direction == "down":
		err = m.Steps(-*steps)
	case *steps != 0:
		err = m.Steps(*steps)
	case *direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			log.Fatal("Database is dirty, fix the failed migration and rerun with -force", zap.Int("version", dirty.Version))
		}
		log.Fatal("Migration failed", zap.Error(err))
	}

	version, isDirty, _ := m.Version()
	log.Info("Migration successful", zap.String("direction", *direction), zap.Uint("version", version), zap.Bool("dirty", isDirty))
}

// migrationURL golang-migrate 需要 URL 形式的连接串
func migrationURL(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}
