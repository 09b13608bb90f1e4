package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYC is a per-user identity-verification record, one-to-one with User.
type KYC struct {
	UserID    uuid.UUID   `json:"userId"`
	BVN       string      `json:"bvn"`
	NINNumber null.String `json:"ninNumber,omitempty"`
	NINImage  null.String `json:"ninImage,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// KYCInput represents a KYC submission. The submitted names must match the
// name stored on the user record.
type KYCInput struct {
	BVN       string `json:"bvn" binding:"required"`
	NINNumber string `json:"ninNumber"`
	NINImage  string `json:"ninImage"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}
