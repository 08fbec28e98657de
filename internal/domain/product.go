package domain

import "time"

// Product prices are stored in minor currency units (paise).
type Product struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description,omitempty"`
	Price         int64     `json:"price" gorm:"not null"`
	OriginalPrice *int64    `json:"originalPrice,omitempty"`
	Category      string    `json:"category" gorm:"not null;index"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	InStock       bool      `json:"inStock" gorm:"not null;default:true"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Badge         string    `json:"badge,omitempty"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// UserRole mirrors the user_roles table; a row with RoleAdmin makes the user
// an administrator.
type UserRole struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `json:"userId" gorm:"not null;index"`
	Role      string    `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
