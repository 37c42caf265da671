package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the document-store side of a user. Credentials live with the
// identity provider; this document is keyed by the provider-assigned uid.
type Profile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID              string             `bson:"uid" json:"uid"`
	Email            string             `bson:"email" json:"email"`
	Name             string             `bson:"name" json:"name"`
	Surname          string             `bson:"surname,omitempty" json:"surname,omitempty"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	OriginCountry    string             `bson:"originCountry,omitempty" json:"originCountry,omitempty"`
	ResidenceCountry string             `bson:"residenceCountry,omitempty" json:"residenceCountry,omitempty"`
	Birthdate        string             `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// PasswordReset is a pending reset request, one live document per user
// (keyed by uid, overwritten by a newer request).
type PasswordReset struct {
	UID       string    `bson:"_id" json:"uid"`
	Code      string    `bson:"code" json:"-"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// SignupRequest covers both the minimal {email, password, name} form and
// the extended profile form.
type SignupRequest struct {
	Email            string `json:"email" example:"ama@example.com"`
	Password         string `json:"password" example:"s3cret!"`
	Name             string `json:"name" example:"Ama"`
	Surname          string `json:"surname,omitempty" example:"Diallo"`
	Phone            string `json:"phone,omitempty" example:"+33612345678"`
	OriginCountry    string `json:"originCountry,omitempty" example:"Senegal"`
	ResidenceCountry string `json:"residenceCountry,omitempty" example:"France"`
	Birthdate        string `json:"birthdate,omitempty" example:"1994-05-12"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ama@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" example:"ama@example.com"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" example:"ama@example.com"`
	Code        string `json:"code" example:"482913"`
	NewPassword string `json:"newPassword" example:"n3w-s3cret!"`
}
