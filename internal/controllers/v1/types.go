package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	pp_uuid "github.com/pennyplan/backend/internal/uuid"
)

type URIID struct {
	ID pp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-02"` // Year and month in YYYY-MM format
}

// parse returns the month of the query. The month is required.
func (q QueryMonth) parse() (types.Month, error) {
	if q.Month == "" {
		return types.Month{}, errMonthNotSetInQuery
	}

	m, err := types.ParseMonth(q.Month)
	if err != nil {
		return types.Month{}, errMonthInvalid
	}

	return m, nil
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// resolver returns the resolver configured for the request.
func resolver(c *gin.Context) recurrence.Resolver {
	if r, ok := c.Get(string(models.DBContextResolver)); ok {
		if resolver, ok := r.(recurrence.Resolver); ok {
			return resolver
		}
	}

	return recurrence.Resolver{}
}
