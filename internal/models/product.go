package models

import "time"

// Product is a catalog entry. Orders copy name/price/image at creation time,
// so later edits to a product never change a placed order.
type Product struct {
	ID            string     `bson:"_id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Slug          string     `bson:"slug" json:"slug"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64    `bson:"price" json:"price"`
	OriginalPrice float64    `bson:"original_price" json:"original_price"`
	Discount      int        `bson:"discount" json:"discount"`
	Image         string     `bson:"image" json:"image"`
	HoverImage    string     `bson:"hover_image,omitempty" json:"hover_image,omitempty"`
	Category      string     `bson:"category" json:"category"`
	MetalTypes    StringList `bson:"metal_types" json:"metal_types"`
	IsFeatured    bool       `bson:"is_featured" json:"is_featured"`
	IsActive      bool       `bson:"is_active" json:"is_active"`
	InStock       bool       `bson:"in_stock" json:"in_stock"`
	StockQuantity int        `bson:"stock_quantity" json:"stock_quantity"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// DefaultMetalTypes is applied when a product is created without explicit
// metal options.
func DefaultMetalTypes() StringList {
	return StringList{"gold", "rose-gold", "silver"}
}
