package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/config"
	"github.com/shoptalk/shoptalk-api/internal/database"
	"github.com/shoptalk/shoptalk-api/internal/router"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	r := router.New(db, cfg)

	log.Printf("listening on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
