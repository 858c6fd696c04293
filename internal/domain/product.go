package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProductID string

type Product struct {
	ID          ProductID
	Name        string
	Description string
	CreatedAt   time.Time
}

func NewProduct(id ProductID, name, description string, createdAt time.Time) Product {
	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
	}
}

func (p Product) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}

	return nil
}
