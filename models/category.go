package models

// Category is an admin-managed label. Products reference categories by name,
// not by ID.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
