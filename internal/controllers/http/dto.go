package http

type CartItemRequest struct {
	ID            string `json:"id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price" binding:"required,min=1"`
	OriginalPrice *int64 `json:"originalPrice"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

type TrackingRequest struct {
	Status         string `json:"status" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         int64   `json:"price" binding:"required"`
	OriginalPrice *int64  `json:"originalPrice"`
	Category      string  `json:"category" binding:"required"`
	ImageURL      string  `json:"imageUrl"`
	InStock       bool    `json:"inStock"`
	Rating        float64 `json:"rating"`
	Badge         string  `json:"badge"`
	Featured      bool    `json:"featured"`
}
