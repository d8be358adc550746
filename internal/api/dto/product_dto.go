package dto

// ProductRequest payload for catalog writes.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Features    []string `json:"features"`
	Category    string   `json:"category" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}
