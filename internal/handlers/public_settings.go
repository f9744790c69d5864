package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"namestrings/internal/models"
)

// GetSettings returns the storefront settings, writing the defaults the first
// time they are requested.
func GetSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var settings models.SiteSettings
		err := db.Collection("settings").FindOne(ctx, bson.M{"_id": models.SiteSettingsID}).Decode(&settings)
		if err == mongo.ErrNoDocuments {
			settings = models.DefaultSiteSettings()
			if _, insertErr := db.Collection("settings").InsertOne(ctx, settings); insertErr != nil {
				log.Println("[SETTINGS] [ERROR] default settings insert failed:", insertErr)
			}
		} else if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}
