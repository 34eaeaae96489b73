package observability

import (
	"os"

	"github.com/dom/league-profile-gateway/internal/config"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger: JSON in production,
// text with full timestamps otherwise.
func SetupLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
