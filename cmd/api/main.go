package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipline/barber-booking/internal/config"
	dbpkg "github.com/clipline/barber-booking/internal/db"
	"github.com/clipline/barber-booking/internal/routes"
	"github.com/clipline/barber-booking/internal/timezone"
	ucAppointment "github.com/clipline/barber-booking/internal/usecase/appointment"
)

func main() {

	cfg := config.Load()
	timezone.Init(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	deps := routes.RegisterRoutes(r, db, cfg)

	go runExpirySweeper(deps.ExpireOverdue)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// runExpirySweeper marca como expirados os agendamentos pendentes cujo
// horário já passou. O endpoint /me/appointments/expire cobre o mesmo
// caso sob demanda.
func runExpirySweeper(expire *ucAppointment.ExpireOverdue) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		count, err := expire.Execute(ctx)
		cancel()

		if err != nil {
			log.Printf("expiry sweep failed: %v", err)
			continue
		}
		if count > 0 {
			log.Printf("expiry sweep: %d appointment(s) expired", count)
		}
	}
}
