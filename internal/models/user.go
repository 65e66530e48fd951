package models

import "time"

// UserModel represents an admin principal who authors articles.
type UserModel struct {
	Base
	Username    string     `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Email       string     `json:"email"    gorm:"size:120"`
	Password    string     `json:"-"        gorm:"not null"`
	IsAdmin     bool       `json:"is_admin" gorm:"default:false"`
	LastLoginAt *time.Time `json:"last_login_at"`
	LastLoginIP string     `json:"-"`

	Articles []ArticleModel `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`
}

func (UserModel) TableName() string { return "users" }
