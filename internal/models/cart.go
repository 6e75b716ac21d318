package models

import "gorm.io/gorm"

// ItemKind discriminates what a cart or order line refers to. A line always
// references exactly one product or exactly one service, never both.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	return k == ItemKindProduct || k == ItemKindService
}

// Cart is a user's mutable pre-purchase collection of items. At most one
// cart per user is active at any time; checkout deactivates it.
type Cart struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"index;type:varchar(36)"`
	Active bool   `json:"active" gorm:"index"`

	Items []CartItem `json:"items" gorm:"foreignKey:CartID"`
	gorm.Model
}

// CartItem is a single cart line. Prices are not stored here: a cart always
// reflects the live catalog price of the referenced entity.
type CartItem struct {
	ID       string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID   string   `json:"cart_id" gorm:"uniqueIndex:idx_cart_kind_entity;type:varchar(36)"`
	Kind     ItemKind `json:"kind" gorm:"uniqueIndex:idx_cart_kind_entity;type:varchar(10)"`
	EntityID string   `json:"entity_id" gorm:"uniqueIndex:idx_cart_kind_entity;type:varchar(36)"`
	Quantity int      `json:"quantity" validate:"gte=1"`
	gorm.Model
}
