// internal/domain/catalog/dto.go
package catalog

// MakeDetail is a make together with its models.
type MakeDetail struct {
	Make   Make    `json:"make"`
	Models []Model `json:"models"`
}
