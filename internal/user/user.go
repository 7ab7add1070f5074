package user

import "time"

type User struct {
	ID          string     `bson:"_id" json:"id"`
	Email       string     `bson:"email" json:"email"`
	Name        string     `bson:"name" json:"name"`
	Password    string     `bson:"password" json:"password,omitempty"`
	Created     time.Time  `bson:"created" json:"created"`
	LastUpdated time.Time  `bson:"lastUpdated" json:"lastUpdated"`
	LastLogin   *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}
