package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterInstallmentRoutes registers the routes for installments with
// the RouterGroup that is passed.
func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInstallmentList)
		r.GET("", GetInstallments)
		r.POST("", CreateInstallments)
	}

	// Installment payments due in a month
	{
		r.OPTIONS("/planned", OptionsInstallmentPlanned)
		r.GET("/planned", GetPlannedInstallments)
	}

	// Installment with ID
	{
		r.OPTIONS("/:id", OptionsInstallmentDetail)
		r.GET("/:id", GetInstallment)
		r.PATCH("/:id", UpdateInstallment)
		r.DELETE("/:id", DeleteInstallment)
		r.OPTIONS("/:id/payments", OptionsInstallmentPayments)
		r.GET("/:id/payments", GetInstallmentPayments)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Router			/v1/installments [options]
func OptionsInstallmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Router			/v1/installments/planned [options]
func OptionsInstallmentPlanned(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [options]
func OptionsInstallmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Installment{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id}/payments [options]
func OptionsInstallmentPayments(c *gin.Context) {
	_, err := getResource[models.Installment](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create installments
// @Description	Creates installments from the list of submitted installment data. The response code is the highest response code number that a single installment creation would have caused. If it is not equal to 201, at least one installment has an error.
// @Tags			Installments
// @Produce		json
// @Success		201				{object}	InstallmentCreateResponse
// @Failure		400				{object}	InstallmentCreateResponse
// @Failure		500				{object}	InstallmentCreateResponse
// @Param			installments	body		[]InstallmentEditable	true	"Installments"
// @Router			/v1/installments [post]
func CreateInstallments(c *gin.Context) {
	var editables []InstallmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InstallmentCreateResponse{}

	for _, editable := range editables {
		installment := editable.model()

		err = models.DB.Create(&installment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInstallment(c, installment)
		r.Data = append(r.Data, InstallmentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get installments
// @Description	Returns a list of installments
// @Tags			Installments
// @Produce		json
// @Success		200			{object}	InstallmentListResponse
// @Failure		400			{object}	InstallmentListResponse
// @Failure		500			{object}	InstallmentListResponse
// @Param			name		query		string	false	"Filter by name"
// @Param			note		query		string	false	"Filter by note"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			active		query		bool	false	"Is the installment active?"
// @Param			search		query		string	false	"Search for this text in name and note"
// @Param			offset		query		uint	false	"The offset of the first Installment returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Installments to return. Defaults to 50."
// @Router			/v1/installments [get]
func GetInstallments(c *gin.Context) {
	var filter InstallmentQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var installments []models.Installment
	err := q.Find(&installments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Installment, 0)
	for _, installment := range installments {
		data = append(data, newInstallment(c, installment))
	}

	c.JSON(http.StatusOK, InstallmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get planned installments
// @Description	Returns the payments of active installments that are due in a month, ordered by date and name. Totals are summed up per currency.
// @Tags			Installments
// @Produce		json
// @Success		200		{object}	InstallmentPlannedResponse
// @Failure		400		{object}	InstallmentPlannedResponse
// @Failure		500		{object}	InstallmentPlannedResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			match	query		string	false	"Only include installments whose name matches this glob pattern"
// @Router			/v1/installments/planned [get]
func GetPlannedInstallments(c *gin.Context) {
	var filter PlannedQueryFilter
	_ = c.ShouldBind(&filter)

	month, err := filter.parse()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentPlannedResponse{
			Error: &s,
		})
		return
	}

	var installments []models.Installment
	err = models.DB.Where(&models.Installment{Active: true}).Find(&installments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentPlannedResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	r := resolver(c)
	items := make([]PlannedInstallment, 0)
	sums := make(map[string]decimal.Decimal)

	for _, installment := range installments {
		if filter.Match != "" && !glob.Glob(filter.Match, installment.Name) {
			continue
		}

		payment, ok := r.Payment(installment.Plan(), month)
		if !ok {
			continue
		}

		items = append(items, PlannedInstallment{
			ID:               installment.ID,
			Name:             installment.Name,
			CategoryID:       installment.CategoryID,
			Amount:           installment.Amount,
			Currency:         installment.Currency,
			Date:             payment.Date,
			PaymentNumber:    payment.Number,
			NumberOfPayments: installment.NumberOfPayments,
			Links:            PlannedLinks{Self: selfLink(url, "installments", installment.ID)},
		})

		sums[installment.Currency] = sums[installment.Currency].Add(installment.Amount)
	}

	slices.SortStableFunc(items, func(a, b PlannedInstallment) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.Before(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	c.JSON(http.StatusOK, InstallmentPlannedResponse{
		Data: &InstallmentPlanned{
			Month:  month,
			Items:  items,
			Totals: totals(sums),
		},
	})
}

// @Summary		Get installment
// @Description	Returns a specific installment
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentResponse
// @Failure		400	{object}	InstallmentResponse
// @Failure		404	{object}	InstallmentResponse
// @Failure		500	{object}	InstallmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [get]
func GetInstallment(c *gin.Context) {
	installment, err := getResource[models.Installment](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	data := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &data})
}

// @Summary		Get installment payments
// @Description	Returns the complete payment schedule of an installment, whether it is active or not
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentPaymentsResponse
// @Failure		400	{object}	InstallmentPaymentsResponse
// @Failure		404	{object}	InstallmentPaymentsResponse
// @Failure		500	{object}	InstallmentPaymentsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id}/payments [get]
func GetInstallmentPayments(c *gin.Context) {
	installment, err := getResource[models.Installment](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentPaymentsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, InstallmentPaymentsResponse{
		Data: resolver(c).Payments(installment.Plan()),
	})
}

// @Summary		Update installment
// @Description	Update an existing installment. Only values to be updated need to be specified.
// @Tags			Installments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InstallmentResponse
// @Failure		400			{object}	InstallmentResponse
// @Failure		404			{object}	InstallmentResponse
// @Failure		500			{object}	InstallmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installment	body		InstallmentEditable	true	"Installment"
// @Router			/v1/installments/{id} [patch]
func UpdateInstallment(c *gin.Context) {
	installment, err := getResource[models.Installment](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InstallmentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	var data InstallmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&installment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	r := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &r})
}

// @Summary		Delete installment
// @Description	Deletes an installment
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [delete]
func DeleteInstallment(c *gin.Context) {
	deleteResource[models.Installment](c)
}
