package services

import (
	"math/rand"
	"time"

	"expense-tracker-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// amountRange bounds the generated amount for a category so seeded data
// looks like real spending rather than uniform noise.
type amountRange struct {
	min float64
	max float64
}

var categoryAmountRanges = map[string]amountRange{
	models.CategoryGroceries:   {5, 250},
	models.CategoryLeisure:     {10, 180},
	models.CategoryElectronics: {25, 1500},
	models.CategoryUtilities:   {30, 400},
	models.CategoryClothing:    {15, 300},
	models.CategoryHealth:      {10, 500},
	models.CategoryOthers:      {5, 200},
}

var categoryTitles = map[string][]string{
	models.CategoryGroceries:   {"Weekly groceries", "Supermarket run", "Farmers market", "Corner shop"},
	models.CategoryLeisure:     {"Cinema tickets", "Concert", "Streaming subscription", "Weekend trip"},
	models.CategoryElectronics: {"Headphones", "Phone accessories", "Smart home gadget", "Laptop repair"},
	models.CategoryUtilities:   {"Electricity bill", "Water bill", "Internet bill", "Phone plan"},
	models.CategoryClothing:    {"New shoes", "Winter jacket", "T-shirts", "Jeans"},
	models.CategoryHealth:      {"Pharmacy", "Dentist visit", "Gym membership", "Eye exam"},
	models.CategoryOthers:      {"Gift", "Donation", "Postage", "Miscellaneous"},
}

type expenseGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewExpenseGenerator creates a seed-data generator for development use
func NewExpenseGenerator() ExpenseGeneratorInterface {
	seed := time.Now().UnixNano()
	return &expenseGenerator{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateExpenses produces count valid expenses for the user spread across
// the [from, to] window. Every generated expense passes model validation.
func (g *expenseGenerator) GenerateExpenses(userID uuid.UUID, count int, from, to time.Time) []*models.Expense {
	if count <= 0 {
		return nil
	}
	if to.Before(from) {
		from, to = to, from
	}

	categories := models.AllCategories()
	window := to.Sub(from)

	expenses := make([]*models.Expense, 0, count)
	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		bounds := categoryAmountRanges[category]
		amount := decimal.NewFromFloat(g.faker.Float64Range(bounds.min, bounds.max)).Round(2)

		createdAt := from
		if window > 0 {
			createdAt = from.Add(time.Duration(g.rng.Int63n(int64(window))))
		}

		titles := categoryTitles[category]
		expenses = append(expenses, &models.Expense{
			UserID:      userID,
			Title:       titles[g.rng.Intn(len(titles))],
			Description: g.faker.Sentence(6),
			Amount:      amount,
			Category:    category,
			CreatedAt:   createdAt,
		})
	}
	return expenses
}
