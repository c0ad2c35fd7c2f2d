package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "admin" or empty
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile holds the fields a user may write about themselves on login.
// Role is deliberately absent: it is only granted through the admin route.
type UserProfile struct {
	Name string `bson:"name,omitempty" json:"name"`
}
