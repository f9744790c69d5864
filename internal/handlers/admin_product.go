package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"namestrings/internal/models"
)

/* =======================
   REQUEST DTOs
======================= */

type ProductCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	Slug          string   `json:"slug" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice float64  `json:"original_price" binding:"required"`
	Discount      int      `json:"discount"`
	Image         string   `json:"image" binding:"required"`
	HoverImage    string   `json:"hover_image"`
	Category      string   `json:"category" binding:"required"`
	MetalTypes    []string `json:"metal_types"`
	IsFeatured    bool     `json:"is_featured"`
	InStock       *bool    `json:"in_stock"`
	StockQuantity *int     `json:"stock_quantity"`
}

// ProductUpdateRequest is the allow-list of mutable product fields; nil means
// "leave unchanged".
type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Discount      *int      `json:"discount"`
	Image         *string   `json:"image"`
	HoverImage    *string   `json:"hover_image"`
	Category      *string   `json:"category"`
	MetalTypes    *[]string `json:"metal_types"`
	IsFeatured    *bool     `json:"is_featured"`
	IsActive      *bool     `json:"is_active"`
	InStock       *bool     `json:"in_stock"`
	StockQuantity *int      `json:"stock_quantity"`
}

func buildProductUpdate(req ProductUpdateRequest, now time.Time) bson.M {
	update := bson.M{}

	if req.Name != nil {
		update["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		update["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		update["original_price"] = *req.OriginalPrice
	}
	if req.Discount != nil {
		update["discount"] = *req.Discount
	}
	if req.Image != nil {
		update["image"] = strings.TrimSpace(*req.Image)
	}
	if req.HoverImage != nil {
		update["hover_image"] = strings.TrimSpace(*req.HoverImage)
	}
	if req.Category != nil {
		update["category"] = strings.TrimSpace(*req.Category)
	}
	if req.MetalTypes != nil {
		update["metal_types"] = models.StringList(*req.MetalTypes)
	}
	if req.IsFeatured != nil {
		update["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		update["is_active"] = *req.IsActive
	}
	if req.InStock != nil {
		update["in_stock"] = *req.InStock
	}
	if req.StockQuantity != nil {
		update["stock_quantity"] = *req.StockQuantity
	}

	if len(update) > 0 {
		update["updated_at"] = now
	}
	return update
}

/* =======================
   HANDLERS
======================= */

func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/products"
		defer handlePanic(c, route)

		limit, skip, err := parsePaginationParams(c.Query("limit"), c.Query("skip"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)

		cursor, err := db.Collection("products").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
	}
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		metalTypes := models.StringList(req.MetalTypes)
		if len(metalTypes) == 0 {
			metalTypes = models.DefaultMetalTypes()
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}
		stockQuantity := 100
		if req.StockQuantity != nil {
			stockQuantity = *req.StockQuantity
		}

		now := time.Now()
		product := models.Product{
			ID:            uuid.NewString(),
			Name:          strings.TrimSpace(req.Name),
			Slug:          strings.TrimSpace(req.Slug),
			Description:   strings.TrimSpace(req.Description),
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Discount:      req.Discount,
			Image:         strings.TrimSpace(req.Image),
			HoverImage:    strings.TrimSpace(req.HoverImage),
			Category:      strings.TrimSpace(req.Category),
			MetalTypes:    metalTypes,
			IsFeatured:    req.IsFeatured,
			IsActive:      true,
			InStock:       inStock,
			StockQuantity: stockQuantity,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("products").InsertOne(ctx, product); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "slug already exists")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[PRODUCT] [INFO] product created:", product.Slug)
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/products/:id"
		defer handlePanic(c, route)

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		update := buildProductUpdate(req, time.Now())
		if len(update) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no update fields provided")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").UpdateOne(ctx,
			bson.M{"_id": c.Param("id")},
			bson.M{"$set": update},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/products/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": c.Param("id")})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		log.Println("[PRODUCT] [INFO] product deleted:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
