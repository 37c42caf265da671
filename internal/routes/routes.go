package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safeland/safetravel-api/internal/config"
	"github.com/safeland/safetravel-api/internal/features/auth"
	"github.com/safeland/safetravel-api/internal/features/testimonies"
	"github.com/safeland/safetravel-api/internal/identity"
)

// SetupRoutes registers every feature under the /api prefix.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, identitySvc *identity.Service) {
	api := router.Group("/api")

	auth.RegisterRoutes(api, db, cfg, identitySvc)
	testimonies.RegisterRoutes(api, db, identitySvc)
}
