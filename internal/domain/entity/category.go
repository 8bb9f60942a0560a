package entity

// CategoryType represents the type of category (Income or Expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "Income"
	CategoryTypeExpense CategoryType = "Expense"
)

// IsValidCategoryType reports whether the given type is a known
// category type.
func IsValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a named Income/Expense classification scoped to one
// project. The (Name, ProjectID) pair is unique.
type Category struct {
	ID        uint
	Name      string
	Type      CategoryType
	ProjectID uint
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, projectID uint) *Category {
	return &Category{
		Name:      name,
		Type:      categoryType,
		ProjectID: projectID,
	}
}
