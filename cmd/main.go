package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/config"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/routes"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Covers a missing JWT_SECRET: the process must not come up with a
		// default signing key.
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	issuer, err := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.WithError(err).Fatal("token issuer init failed")
	}

	r := routes.SetupRouter(db, issuer)
	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
