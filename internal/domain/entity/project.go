// Package entity defines the core domain entities.
package entity

// DefaultProjectDescription is the placeholder shown for projects
// created without a description.
const DefaultProjectDescription = "No description"

// Project is the top-level bookkeeping unit owning categories,
// transactions and an audit trail. Project names are globally unique.
type Project struct {
	ID          uint
	Name        string
	Description string
}

// NewProject creates a new Project entity.
func NewProject(name, description string) *Project {
	return &Project{
		Name:        name,
		Description: description,
	}
}

// StarterCategory describes one entry of the category set seeded into
// every new project.
type StarterCategory struct {
	Name string
	Type CategoryType
}

// DefaultStarterCategories is the category set every new project
// starts with.
var DefaultStarterCategories = []StarterCategory{
	{Name: "Sales", Type: CategoryTypeIncome},
	{Name: "General Expenses", Type: CategoryTypeExpense},
}
