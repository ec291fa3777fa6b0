// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string     `json:"phone" gorm:"index;size:20"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	ProfileData  JSONB      `json:"profile_data" gorm:"type:jsonb"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Items     []BaseItem `json:"items,omitempty" gorm:"foreignKey:OwnerID"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
	Carts     []Cart     `json:"carts,omitempty" gorm:"foreignKey:UserID"`
	Orders    []Order    `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// Favorite joins a user to a sellable item through its canonical BaseItemID.
type Favorite struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_item"`
	BaseItemID uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_item"`

	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BaseItem BaseItem `json:"base_item,omitempty" gorm:"foreignKey:BaseItemID"`
}
