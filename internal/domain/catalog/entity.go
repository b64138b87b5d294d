// internal/domain/catalog/entity.go
package catalog

// Make is a car manufacturer.
type Make struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	LogoURL     *string `json:"logo_url,omitempty" db:"logo_url"`
	Description string  `json:"description" db:"description"`
}

// Model is a car model belonging to one Make.
type Model struct {
	ID     int64  `json:"id" db:"id"`
	MakeID int64  `json:"make_id" db:"make_id"`
	Name   string `json:"name" db:"name"`
}
