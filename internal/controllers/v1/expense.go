package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expenses planned for a month
	{
		r.OPTIONS("/planned", OptionsExpensePlanned)
		r.GET("/planned", GetPlannedExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/planned [options]
func OptionsExpensePlanned(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates expenses from the list of submitted expense data. The response code is the highest response code number that a single expense creation would have caused. If it is not equal to 201, at least one expense has an error.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	ExpenseCreateResponse
// @Failure		500		{object}	ExpenseCreateResponse
// @Param			expenses	body		[]RecurringEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []RecurringEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense := expenseModel(editable)

		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Failure		500			{object}	ExpenseListResponse
// @Param			name		query		string	false	"Filter by name"
// @Param			note		query		string	false	"Filter by note"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			search		query		string	false	"Search for this text in name and note"
// @Param			offset		query		uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Expenses to return. Defaults to 50."
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter RecurringQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := models.Expense{
		CategoryID: filter.CategoryID.Ptr(),
		Recurring:  filter.recurring(),
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0)
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get planned expenses
// @Description	Returns the expenses that occur in a month with the date of their first occurrence in that month, ordered by date and name. Totals are summed up per currency.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	PlannedResponse
// @Failure		400		{object}	PlannedResponse
// @Failure		500		{object}	PlannedResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			match	query		string	false	"Only include expenses whose name matches this glob pattern"
// @Router			/v1/expenses/planned [get]
func GetPlannedExpenses(c *gin.Context) {
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

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlannedResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	sources := make([]plannedSource, 0, len(expenses))
	for _, expense := range expenses {
		sources = append(sources, plannedSource{
			id:         expense.ID,
			name:       expense.Name,
			categoryID: expense.CategoryID,
			recurring:  expense.Recurring,
			self:       selfLink(url, "expenses", expense.ID),
		})
	}

	data := planned(resolver(c), month, filter.Match, sources)
	c.JSON(http.StatusOK, PlannedResponse{Data: &data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	expense, err := getResource[models.Expense](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		RecurringEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	expense, err := getResource[models.Expense](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data RecurringEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(expenseModel(data)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	deleteResource[models.Expense](c)
}
