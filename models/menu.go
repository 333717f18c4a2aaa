package models

// MenuItem is one dish joined with its category, as served by /api/menu.
type MenuItem struct {
	ID           int     `json:"id"`
	CategoryID   *int    `json:"category_id,omitempty"`
	NameEN       string  `json:"name_en"`
	NameTH       *string `json:"name_th,omitempty"`
	Description  *string `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	CategoryEN   *string `json:"category_en,omitempty"`
	CategorySlug *string `json:"category_slug,omitempty"`
}
