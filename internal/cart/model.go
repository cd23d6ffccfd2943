package cart

import (
	"time"

	"arova-be/internal/catalog"
)

type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}
