package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
)

type resource interface {
	models.Category | models.Income | models.Expense | models.Subscription | models.Installment
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// getResource binds the ID from the URI and loads the resource with it.
func getResource[R resource](c *gin.Context) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = models.DB.First(&r, "id = ?", uri.ID.UUID).Error
	return r, err
}

// deleteResource deletes the resource identified by the ID in the URI.
func deleteResource[R resource](c *gin.Context) {
	r, err := getResource[R](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&r).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
