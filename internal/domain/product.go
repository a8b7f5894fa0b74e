package domain

// Product is a catalog entry. IDs are stable strings: the static seed uses
// its own ids ("prod-1"...), admin-created products get a fresh uuid.
type Product struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
}

// PriceOnRequest reports whether the price carries the "consultar preço"
// sentinel (0 means price on request, not a free item).
func (p Product) PriceOnRequest() bool { return p.Price == 0 }

// NewProduct carries the admin input for a product creation.
type NewProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// ProductUpdate holds the updatable fields of a product; nil means untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Category == nil
}
