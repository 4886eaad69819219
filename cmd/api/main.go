package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ShineWorks01/detailing-scheduler/internal/config"
	dbpkg "github.com/ShineWorks01/detailing-scheduler/internal/db"
	infraRepo "github.com/ShineWorks01/detailing-scheduler/internal/infra/repository"
	"github.com/ShineWorks01/detailing-scheduler/internal/notify"
	"github.com/ShineWorks01/detailing-scheduler/internal/routes"
	"github.com/ShineWorks01/detailing-scheduler/internal/sweeper"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := notify.NewRedisClient(cfg.RedisURL)

	sw := sweeper.New(infraRepo.NewAppointmentGormRepository(db), cfg.Timezone)
	sw.Start()
	defer sw.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, redisClient, sw)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
