package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func fundingRoundService(c *gin.Context) services.FundingRoundService {
	return services.FundingRoundService{RequestID: middleware.GetRequestID(c)}
}

func GetFundingRounds(c *gin.Context) {
	var req models.FundingRoundSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchFundingRounds(c, req)
}

func SearchFundingRounds(c *gin.Context) {
	var req models.FundingRoundSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchFundingRounds(c, req)
}

func searchFundingRounds(c *gin.Context, req models.FundingRoundSearchRequest) {
	res, err := fundingRoundService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetFundingRoundByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := fundingRoundService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func GetFundingRoundByPermalink(c *gin.Context) {
	d, err := fundingRoundService(c).GetByPermalink(c.Request.Context(), c.Param("permalink"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
