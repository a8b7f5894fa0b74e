package domain

// Category groups products by name. The id is assigned by the store on first
// persist; seed-derived fallback categories carry an empty id until synced.
// Deleting a category does not cascade to products referencing it: they keep
// the dangling name and must be re-categorized by hand.
type Category struct {
	ID   string `bson:"_id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
}
