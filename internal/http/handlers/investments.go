package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func investmentService(c *gin.Context) services.InvestmentService {
	return services.InvestmentService{RequestID: middleware.GetRequestID(c)}
}

func GetInvestments(c *gin.Context) {
	var req models.InvestmentSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchInvestments(c, req)
}

func SearchInvestments(c *gin.Context) {
	var req models.InvestmentSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchInvestments(c, req)
}

func searchInvestments(c *gin.Context, req models.InvestmentSearchRequest) {
	res, err := investmentService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetInvestmentByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := investmentService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
