package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubscriptionList)
		r.GET("", GetSubscriptions)
		r.POST("", CreateSubscriptions)
	}

	// Subscriptions planned for a month
	{
		r.OPTIONS("/planned", OptionsSubscriptionPlanned)
		r.GET("/planned", GetPlannedSubscriptions)
	}

	// Subscription with ID
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
		r.DELETE("/:id", DeleteSubscription)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions/planned [options]
func OptionsSubscriptionPlanned(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subscription{})
}

// @Summary		Create subscriptions
// @Description	Creates subscriptions from the list of submitted subscription data. The response code is the highest response code number that a single subscription creation would have caused. If it is not equal to 201, at least one subscription has an error.
// @Tags			Subscriptions
// @Produce		json
// @Success		201		{object}	SubscriptionCreateResponse
// @Failure		400		{object}	SubscriptionCreateResponse
// @Failure		500		{object}	SubscriptionCreateResponse
// @Param			subscriptions	body		[]RecurringEditable	true	"Subscriptions"
// @Router			/v1/subscriptions [post]
func CreateSubscriptions(c *gin.Context) {
	var editables []RecurringEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SubscriptionCreateResponse{}

	for _, editable := range editables {
		subscription := subscriptionModel(editable)

		err = models.DB.Create(&subscription).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSubscription(c, subscription)
		r.Data = append(r.Data, SubscriptionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get subscriptions
// @Description	Returns a list of subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200			{object}	SubscriptionListResponse
// @Failure		400			{object}	SubscriptionListResponse
// @Failure		500			{object}	SubscriptionListResponse
// @Param			name		query		string	false	"Filter by name"
// @Param			note		query		string	false	"Filter by note"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			search		query		string	false	"Search for this text in name and note"
// @Param			offset		query		uint	false	"The offset of the first Subscription returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Subscriptions to return. Defaults to 50."
// @Router			/v1/subscriptions [get]
func GetSubscriptions(c *gin.Context) {
	var filter RecurringQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := models.Subscription{
		CategoryID: filter.CategoryID.Ptr(),
		Recurring:  filter.recurring(),
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var subscriptions []models.Subscription
	err := q.Find(&subscriptions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Subscription, 0)
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(c, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get planned subscriptions
// @Description	Returns the subscriptions that occur in a month with the date of their first occurrence in that month, ordered by date and name. Totals are summed up per currency.
// @Tags			Subscriptions
// @Produce		json
// @Success		200		{object}	PlannedResponse
// @Failure		400		{object}	PlannedResponse
// @Failure		500		{object}	PlannedResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			match	query		string	false	"Only include subscriptions whose name matches this glob pattern"
// @Router			/v1/subscriptions/planned [get]
func GetPlannedSubscriptions(c *gin.Context) {
	var filter PlannedQueryFilter
	_ = c.ShouldBind(&filter)

	month, err := filter.parse()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PlannedResponse{
			Error: &s,
		})
		return
	}

	var subscriptions []models.Subscription
	err = models.DB.Find(&subscriptions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlannedResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	sources := make([]plannedSource, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		sources = append(sources, plannedSource{
			id:         subscription.ID,
			name:       subscription.Name,
			categoryID: subscription.CategoryID,
			recurring:  subscription.Recurring,
			self:       selfLink(url, "subscriptions", subscription.ID),
		})
	}

	data := planned(resolver(c), month, filter.Match, sources)
	c.JSON(http.StatusOK, PlannedResponse{Data: &data})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	subscription, err := getResource[models.Subscription](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	data := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &data})
}

// @Summary		Update subscription
// @Description	Update an existing subscription. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SubscriptionResponse
// @Failure		400		{object}	SubscriptionResponse
// @Failure		404		{object}	SubscriptionResponse
// @Failure		500		{object}	SubscriptionResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		RecurringEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	subscription, err := getResource[models.Subscription](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var data RecurringEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(subscriptionModel(data)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	r := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &r})
}

// @Summary		Delete subscription
// @Description	Deletes a subscription
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [delete]
func DeleteSubscription(c *gin.Context) {
	deleteResource[models.Subscription](c)
}
