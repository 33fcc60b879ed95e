package models

import "time"

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#007bff"

// Category is an optional grouping tag owned by exactly one user.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}

// Ref is the compact form embedded in tasks.
func (c *Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color}
}

// CategoryRef is a task's view of its category.
type CategoryRef struct {
	ID    string
	Name  string
	Color string
}
