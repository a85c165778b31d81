package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}

	// Incomes planned for a month
	{
		r.OPTIONS("/planned", OptionsIncomePlanned)
		r.GET("/planned", GetPlannedIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes/planned [options]
func OptionsIncomePlanned(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{})
}

// @Summary		Create incomes
// @Description	Creates incomes from the list of submitted income data. The response code is the highest response code number that a single income creation would have caused. If it is not equal to 201, at least one income has an error.
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]RecurringEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var editables []RecurringEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		income := incomeModel(editable)

		err = models.DB.Create(&income).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of incomes
// @Tags			Incomes
// @Produce		json
// @Success		200			{object}	IncomeListResponse
// @Failure		400			{object}	IncomeListResponse
// @Failure		500			{object}	IncomeListResponse
// @Param			name		query		string	false	"Filter by name"
// @Param			note		query		string	false	"Filter by note"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			search		query		string	false	"Search for this text in name and note"
// @Param			offset		query		uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Incomes to return. Defaults to 50."
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	var filter RecurringQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := models.Income{
		CategoryID: filter.CategoryID.Ptr(),
		Recurring:  filter.recurring(),
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Income, 0)
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get planned incomes
// @Description	Returns the incomes that occur in a month with the date of their first occurrence in that month, ordered by date and name. Totals are summed up per currency.
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	PlannedResponse
// @Failure		400		{object}	PlannedResponse
// @Failure		500		{object}	PlannedResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			match	query		string	false	"Only include incomes whose name matches this glob pattern"
// @Router			/v1/incomes/planned [get]
func GetPlannedIncomes(c *gin.Context) {
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

	var incomes []models.Income
	err = models.DB.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlannedResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	sources := make([]plannedSource, 0, len(incomes))
	for _, income := range incomes {
		sources = append(sources, plannedSource{
			id:         income.ID,
			name:       income.Name,
			categoryID: income.CategoryID,
			recurring:  income.Recurring,
			self:       selfLink(url, "incomes", income.ID),
		})
	}

	data := planned(resolver(c), month, filter.Match, sources)
	c.JSON(http.StatusOK, PlannedResponse{Data: &data})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	income, err := getResource[models.Income](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Update an existing income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		RecurringEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	income, err := getResource[models.Income](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var data RecurringEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(incomeModel(data)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	r := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &r})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	deleteResource[models.Income](c)
}
