package dto

// CartItem is one checkout line as sent by the browser. Price and name
// are resolved server-side from the merch catalog; item, size and
// quantity are checked there too, not by struct tags.
type CartItem struct {
	ItemID   string `json:"item_id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ResolvedItem is the priced line persisted on the order.
type ResolvedItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"` // unit price
}

// CreateOrderRequest is the merch checkout form. The items field is a
// JSON-encoded string because the form is multipart (screenshot).
type CreateOrderRequest struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Phone       string `form:"phone" json:"phone" validate:"required,phone_lenient"`
	Institution string `form:"institution" json:"institution" validate:"required"`

	ItemsJSON string `form:"items" json:"items" validate:"required"`
}
