package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/models"
)

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/1e777d24-3f5b-4c43-8000-04f65f895578"` // The expense itself
}

// Expense is the API representation of an Expense.
type Expense struct {
	models.DefaultModel
	RecurringEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel:      model.DefaultModel,
		RecurringEditable: newRecurringEditable(model.Name, model.Note, model.CategoryID, model.Recurring),
		Links: ExpenseLinks{
			Self: selfLink(url, "expenses", model.ID),
		},
	}
}

func expenseModel(editable RecurringEditable) models.Expense {
	return models.Expense{
		Name:       editable.Name,
		Note:       editable.Note,
		CategoryID: editable.CategoryID,
		Recurring:  editable.recurring(),
	}
}

type ExpenseListResponse struct {
	Data       []Expense    `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
