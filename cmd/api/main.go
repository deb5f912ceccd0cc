package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/curalink-dev/curalink-server/internal/config"
	dbpkg "github.com/curalink-dev/curalink-server/internal/db"
	"github.com/curalink-dev/curalink-server/internal/routes"
	"github.com/curalink-dev/curalink-server/internal/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
