package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func organizationService(c *gin.Context) services.OrganizationService {
	return services.OrganizationService{RequestID: middleware.GetRequestID(c)}
}

// GetOrganizations handles GET /api/organizations with query-string filters.
func GetOrganizations(c *gin.Context) {
	var req models.OrganizationSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchOrganizations(c, req)
}

// SearchOrganizations handles POST /api/organizations/search with a JSON body.
func SearchOrganizations(c *gin.Context) {
	var req models.OrganizationSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchOrganizations(c, req)
}

func searchOrganizations(c *gin.Context, req models.OrganizationSearchRequest) {
	res, err := organizationService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetOrganizationByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := organizationService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func GetOrganizationByPermalink(c *gin.Context) {
	d, err := organizationService(c).GetByPermalink(c.Request.Context(), c.Param("permalink"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
