package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

// GlobalSearch handles GET /api/search?searchText=...&entityTypes=...&topN=...
func GlobalSearch(c *gin.Context) {
	var req models.GlobalSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	svc := services.GlobalSearchService{RequestID: middleware.GetRequestID(c)}
	res, err := svc.Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
