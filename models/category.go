package models

// Category is a storefront section (projects, designs, mini-projects,
// code-library). Slug-addressed in the catalog routes.
type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Slug     string    `gorm:"uniqueIndex;not null" json:"slug"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
