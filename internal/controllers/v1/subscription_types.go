package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/models"
)

type SubscriptionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/subscriptions/1e777d24-3f5b-4c43-8000-04f65f895578"` // The subscription itself
}

// Subscription is the API representation of a Subscription.
type Subscription struct {
	models.DefaultModel
	RecurringEditable
	Links SubscriptionLinks `json:"links"`
}

func newSubscription(c *gin.Context, model models.Subscription) Subscription {
	url := c.GetString(string(models.DBContextURL))

	return Subscription{
		DefaultModel:      model.DefaultModel,
		RecurringEditable: newRecurringEditable(model.Name, model.Note, model.CategoryID, model.Recurring),
		Links: SubscriptionLinks{
			Self: selfLink(url, "subscriptions", model.ID),
		},
	}
}

func subscriptionModel(editable RecurringEditable) models.Subscription {
	return models.Subscription{
		Name:       editable.Name,
		Note:       editable.Note,
		CategoryID: editable.CategoryID,
		Recurring:  editable.recurring(),
	}
}

type SubscriptionListResponse struct {
	Data       []Subscription    `json:"data"`                                                          // List of Subscriptions
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SubscriptionCreateResponse struct {
	Data  []SubscriptionResponse `json:"data"`                                                          // List of the created Subscriptions or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *SubscriptionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, SubscriptionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionResponse struct {
	Data  *Subscription `json:"data"`                                                          // Data for the Subscription
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
