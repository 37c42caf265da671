package testimonies

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safeland/safetravel-api/internal/identity"
	"github.com/safeland/safetravel-api/internal/middleware"
)

// RegisterRoutes wires the testimony endpoints under the /api group.
// Reads are open by design; writes require a verified identity.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, identitySvc *identity.Service) {
	repo := NewRepository(db)
	handler := NewHandler(repo)
	authMiddleware := middleware.Auth(identitySvc.Verifier())

	router.POST("/testimonies", authMiddleware, handler.Create)
	router.GET("/testimonies", handler.List)
}
