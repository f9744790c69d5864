package models

import "time"

type RefreshToken struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	TokenHash       string    `bson:"token_hash" json:"token_hash"`
	ExpiresAt       time.Time `bson:"expires_at" json:"expires_at"`
	Revoked         bool      `bson:"revoked" json:"revoked"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	ReplacedByToken *string   `bson:"replaced_by_token,omitempty" json:"replaced_by_token,omitempty"`
}
