package wishlist

import (
	"time"

	"arova-be/internal/catalog"
)

// Item is a saved-for-later product. Presence-only: no quantity.
type Item struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}
