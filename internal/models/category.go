package models

// Expense categories form a closed set; anything outside it is rejected at
// validation time.
const (
	CategoryGroceries   = "Groceries"
	CategoryLeisure     = "Leisure"
	CategoryElectronics = "Electronics"
	CategoryUtilities   = "Utilities"
	CategoryClothing    = "Clothing"
	CategoryHealth      = "Health"
	CategoryOthers      = "Others"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryLeisure,
		CategoryElectronics,
		CategoryUtilities,
		CategoryClothing,
		CategoryHealth,
		CategoryOthers,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
