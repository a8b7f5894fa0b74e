package domain

import "time"

// User is a storefront account, keyed by email. Accounts created through the
// Google sign-in carry an empty password hash.
type User struct {
	Email        string    `bson:"_id" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
