// internal/models/communication.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseContent is the shared title/body record reused by comments, reviews
// and messages so attachments hang off a single table.
type BaseContent struct {
	BaseModel
	Title string `json:"title" gorm:"size:255"`
	Body  string `json:"body" gorm:"type:text"`

	Attachments []Attachment `json:"attachments,omitempty" gorm:"foreignKey:BaseContentID"`
}

type Attachment struct {
	BaseModel
	BaseContentID uuid.UUID `json:"base_content_id" gorm:"type:uuid;not null;index"`
	URL           string    `json:"url" gorm:"size:500;not null"`
	MimeType      string    `json:"mime_type" gorm:"size:100"`
	SizeBytes     int64     `json:"size_bytes" gorm:"default:0"`
}

// Comment references a sellable through BaseItemID, never a Product or
// Service id directly.
type Comment struct {
	BaseModel
	BaseItemID    uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	BaseContentID uuid.UUID `json:"base_content_id" gorm:"type:uuid;not null"`

	User    User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content BaseContent `json:"content,omitempty" gorm:"foreignKey:BaseContentID"`
}

// Review is unique per user and item; creating one updates the BaseItem
// rating aggregates in the same transaction.
type Review struct {
	BaseModel
	BaseItemID    uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_item"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_item"`
	Rating        int       `json:"rating" gorm:"not null"`
	BaseContentID uuid.UUID `json:"base_content_id" gorm:"type:uuid;not null"`

	User    User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content BaseContent `json:"content,omitempty" gorm:"foreignKey:BaseContentID"`
}

// Conversation links a buyer and a seller, optionally about one item.
type Conversation struct {
	BaseModel
	BaseItemID *uuid.UUID `json:"base_item_id" gorm:"type:uuid;index"`
	BuyerID    uuid.UUID  `json:"buyer_id" gorm:"type:uuid;not null;index"`
	SellerID   uuid.UUID  `json:"seller_id" gorm:"type:uuid;not null;index"`

	Buyer    User      `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Seller   User      `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

type Message struct {
	BaseModel
	ConversationID uuid.UUID  `json:"conversation_id" gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index"`
	Body           string     `json:"body" gorm:"type:text;not null"`
	ReadAt         *time.Time `json:"read_at"`

	Sender User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}
