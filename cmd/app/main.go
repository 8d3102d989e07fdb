package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hothcommerce/storefront/internal/config"
	"github.com/hothcommerce/storefront/internal/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.NodeEnv)

	app := newApp(cfg, log)

	log.Info("Customer storefront running",
		"port", cfg.Port,
		"env", cfg.NodeEnv,
		"managementApi", cfg.Management.APIURL,
	)
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}
