package enum

// ExpenseCategory classifies a branch expense
type ExpenseCategory string

const (
	ExpenseCategoryOperasional ExpenseCategory = "operasional"
	ExpenseCategoryListrik     ExpenseCategory = "listrik"
	ExpenseCategoryAir         ExpenseCategory = "air"
	ExpenseCategoryPembelian   ExpenseCategory = "pembelian"
	ExpenseCategoryLainnya     ExpenseCategory = "lainnya"
)

// ExpenseCategories lists every category in display order
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryOperasional,
	ExpenseCategoryListrik,
	ExpenseCategoryAir,
	ExpenseCategoryPembelian,
	ExpenseCategoryLainnya,
}

func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}
