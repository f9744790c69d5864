package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"namestrings/internal/config"
	"namestrings/internal/database"
	"namestrings/internal/models"
)

// Seeds the catalog, default settings, sample coupons and (optionally) a
// first admin account. Safe to run repeatedly: categories, products and
// coupons are keyed by slug/code and never overwrite existing documents.
func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(config.AppEnv.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seedCategories(ctx, db)
	seedProducts(ctx, db)
	seedSettings(ctx, db)
	seedCoupons(ctx, db)
	seedAdmin(ctx, db)

	log.Println("[SEED] [INFO] done")
}

func seedCategories(ctx context.Context, db *mongo.Database) {
	categories := []models.Category{
		{Name: "Her", Slug: "for-her", Order: 1},
		{Name: "Him", Slug: "for-him", Order: 2},
		{Name: "Kids", Slug: "kids", Order: 3},
		{Name: "Couple", Slug: "couple", Order: 4},
		{Name: "Cultural", Slug: "cultural", Order: 5},
		{Name: "Express Ship", Slug: "express-ship", Order: 6},
	}

	coll := db.Collection("categories")
	inserted := 0
	for _, cat := range categories {
		count, err := coll.CountDocuments(ctx, bson.M{"slug": cat.Slug})
		if err != nil {
			log.Fatal("[SEED] [ERROR] category lookup:", err)
		}
		if count > 0 {
			continue
		}

		cat.ID = uuid.NewString()
		cat.IsActive = true
		cat.CreatedAt = time.Now()
		if _, err := coll.InsertOne(ctx, cat); err != nil {
			log.Fatal("[SEED] [ERROR] category insert:", err)
		}
		inserted++
	}
	log.Printf("[SEED] [INFO] categories: %d inserted", inserted)
}

func seedProducts(ctx context.Context, db *mongo.Database) {
	products := []models.Product{
		{Name: "Men Circle Bracelet", Slug: "men-circle-bracelet", Price: 1499, OriginalPrice: 2499, Discount: 40, Category: "for-him", IsFeatured: true,
			Image: "https://images.pexels.com/photos/3634366/pexels-photo-3634366.jpeg?w=533", HoverImage: "https://images.pexels.com/photos/32039109/pexels-photo-32039109.jpeg?w=533"},
		{Name: "Rainbow Kids Name Necklace", Slug: "rainbow-kids-necklace", Price: 1499, OriginalPrice: 1899, Discount: 21, Category: "kids", IsFeatured: true,
			Image: "https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?w=533&q=80", HoverImage: "https://images.unsplash.com/photo-1600862754152-80a263dd564f?w=533&q=80"},
		{Name: "Chic Signature Name Necklace", Slug: "chic-signature-necklace", Price: 1499, OriginalPrice: 1899, Discount: 21, Category: "for-her", IsFeatured: true,
			Image: "https://images.unsplash.com/photo-1623321673989-830eff0fd59f?w=533&q=80", HoverImage: "https://images.pexels.com/photos/4550854/pexels-photo-4550854.jpeg?w=533"},
		{Name: "Heart Name Necklace", Slug: "heart-name-necklace", Price: 1499, OriginalPrice: 1899, Discount: 21, Category: "for-her", IsFeatured: true,
			Image: "https://images.unsplash.com/photo-1622398925373-3f91b1e275f5?w=533&q=80", HoverImage: "https://images.unsplash.com/photo-1598560917807-1bae44bd2be8?w=533&q=80"},
		{Name: "Zirconia Bar Necklace", Slug: "zirconia-bar-necklace", Price: 1799, OriginalPrice: 2499, Discount: 28, Category: "for-her", IsFeatured: true,
			Image: "https://images.unsplash.com/photo-1611955167811-4711904bb9f8?w=533&q=80", HoverImage: "https://images.pexels.com/photos/3674231/pexels-photo-3674231.jpeg?w=533"},
		{Name: "Dainty Name Necklace", Slug: "dainty-name-necklace", Price: 1499, OriginalPrice: 1899, Discount: 21, Category: "for-her", IsFeatured: true,
			Image: "https://images.pexels.com/photos/13924051/pexels-photo-13924051.jpeg?w=533", HoverImage: "https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?w=533&q=80"},
		{Name: "Men Legacy Bracelet", Slug: "men-legacy-bracelet", Price: 1499, OriginalPrice: 2499, Discount: 40, Category: "for-him", IsFeatured: true,
			Image: "https://images.pexels.com/photos/3070012/pexels-photo-3070012.jpeg?w=533", HoverImage: "https://images.pexels.com/photos/3634366/pexels-photo-3634366.jpeg?w=533"},
		{Name: "Preserved Rose Box & Necklace", Slug: "rose-box-necklace", Price: 1999, OriginalPrice: 3499, Discount: 43, Category: "for-her", IsFeatured: true,
			Image: "https://images.pexels.com/photos/10582459/pexels-photo-10582459.jpeg?w=533", HoverImage: "https://images.pexels.com/photos/11952260/pexels-photo-11952260.jpeg?w=533"},
		{Name: "Circle of Love Bead Necklace", Slug: "circle-love-necklace", Price: 1499, OriginalPrice: 2499, Discount: 40, Category: "for-her",
			Image: "https://images.unsplash.com/photo-1600862754152-80a263dd564f?w=533&q=80", HoverImage: "https://images.unsplash.com/photo-1623321673989-830eff0fd59f?w=533&q=80"},
		{Name: "Bond of Love Bracelets Set", Slug: "bond-love-bracelets", Price: 1499, OriginalPrice: 2199, Discount: 32, Category: "couple",
			Image: "https://images.pexels.com/photos/121848/pexels-photo-121848.jpeg?w=533", HoverImage: "https://images.pexels.com/photos/3634366/pexels-photo-3634366.jpeg?w=533"},
		{Name: "Couple Name Ring", Slug: "couple-name-ring", Price: 1499, OriginalPrice: 1899, Discount: 21, Category: "couple",
			Image: "https://images.unsplash.com/photo-1611955167811-4711904bb9f8?w=533&q=80", HoverImage: "https://images.unsplash.com/photo-1622398925373-3f91b1e275f5?w=533&q=80"},
	}

	coll := db.Collection("products")
	inserted := 0
	for _, product := range products {
		count, err := coll.CountDocuments(ctx, bson.M{"slug": product.Slug})
		if err != nil {
			log.Fatal("[SEED] [ERROR] product lookup:", err)
		}
		if count > 0 {
			continue
		}

		product.ID = uuid.NewString()
		product.MetalTypes = models.DefaultMetalTypes()
		product.IsActive = true
		product.InStock = true
		product.StockQuantity = 100
		product.CreatedAt = time.Now()
		product.UpdatedAt = product.CreatedAt
		if _, err := coll.InsertOne(ctx, product); err != nil {
			log.Fatal("[SEED] [ERROR] product insert:", err)
		}
		inserted++
	}
	log.Printf("[SEED] [INFO] products: %d inserted", inserted)
}

func seedSettings(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("settings")
	count, err := coll.CountDocuments(ctx, bson.M{"_id": models.SiteSettingsID})
	if err != nil {
		log.Fatal("[SEED] [ERROR] settings lookup:", err)
	}
	if count > 0 {
		log.Println("[SEED] [INFO] settings: already present")
		return
	}

	if _, err := coll.InsertOne(ctx, models.DefaultSiteSettings()); err != nil {
		log.Fatal("[SEED] [ERROR] settings insert:", err)
	}
	log.Println("[SEED] [INFO] settings: defaults written")
}

func seedCoupons(ctx context.Context, db *mongo.Database) {
	maxDiscount := 500.0
	usageLimit := 100
	coupons := []models.Coupon{
		{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, DiscountValue: 10, MinOrderAmount: 999, MaxDiscount: &maxDiscount},
		{Code: "FLAT200", DiscountType: models.DiscountTypeFixed, DiscountValue: 200, MinOrderAmount: 1499, UsageLimit: &usageLimit},
	}

	coll := db.Collection("coupons")
	inserted := 0
	for _, coupon := range coupons {
		count, err := coll.CountDocuments(ctx, bson.M{"code": coupon.Code})
		if err != nil {
			log.Fatal("[SEED] [ERROR] coupon lookup:", err)
		}
		if count > 0 {
			continue
		}

		coupon.ID = uuid.NewString()
		coupon.IsActive = true
		coupon.ValidFrom = time.Now()
		coupon.CreatedAt = time.Now()
		if _, err := coll.InsertOne(ctx, coupon); err != nil {
			log.Fatal("[SEED] [ERROR] coupon insert:", err)
		}
		inserted++
	}
	log.Printf("[SEED] [INFO] coupons: %d inserted", inserted)
}

// seedAdmin creates an admin account when ADMIN_EMAIL and ADMIN_PASSWORD are
// set. Skipped silently otherwise; the /api/admin/setup endpoint covers the
// interactive path.
func seedAdmin(ctx context.Context, db *mongo.Database) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[SEED] [INFO] admin: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping")
		return
	}

	coll := db.Collection("users")
	count, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatal("[SEED] [ERROR] admin lookup:", err)
	}
	if count > 0 {
		log.Println("[SEED] [INFO] admin: account already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("[SEED] [ERROR] admin password hash:", err)
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Admin",
		Role:         models.RoleAdmin,
		IsActive:     true,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if _, err := coll.InsertOne(ctx, admin); err != nil {
		log.Fatal("[SEED] [ERROR] admin insert:", err)
	}
	log.Println("[SEED] [INFO] admin created:", email)
}
