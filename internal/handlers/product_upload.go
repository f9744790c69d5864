package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"namestrings/internal/models"
)

const maxUploadBytes = 5 << 20

// UploadProductImage replaces a product's image with an uploaded file. The
// previous image is deleted only when it was itself an upload; seeded
// external URLs stay untouched.
func UploadProductImage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products/:id/image"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err := db.Collection("products").FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "image file is required")
			return
		}
		if file.Size > maxUploadBytes {
			respondWithError(c, http.StatusBadRequest, route, "image exceeds the 5MB limit")
			return
		}

		webPath, err := saveProductImage(c, file)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		_, err = db.Collection("products").UpdateOne(ctx,
			bson.M{"_id": product.ID},
			bson.M{"$set": bson.M{
				"image":      webPath,
				"updated_at": time.Now(),
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if strings.HasPrefix(product.Image, "/public/uploads/") {
			if err := safeDeleteUpload(product.Image); err != nil {
				log.Println("[UPLOAD] [ERROR] old image cleanup failed:", err)
			}
		}

		log.Println("[UPLOAD] [INFO] product image replaced:", product.ID)
		c.JSON(http.StatusOK, gin.H{"success": true, "image": webPath})
	}
}
