package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/models"
)

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/1e777d24-3f5b-4c43-8000-04f65f895578"` // The income itself
}

// Income is the API representation of an Income.
type Income struct {
	models.DefaultModel
	RecurringEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel:      model.DefaultModel,
		RecurringEditable: newRecurringEditable(model.Name, model.Note, model.CategoryID, model.Recurring),
		Links: IncomeLinks{
			Self: selfLink(url, "incomes", model.ID),
		},
	}
}

func incomeModel(editable RecurringEditable) models.Income {
	return models.Income{
		Name:       editable.Name,
		Note:       editable.Note,
		CategoryID: editable.CategoryID,
		Recurring:  editable.recurring(),
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created Incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
