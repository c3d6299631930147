package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func acquisitionService(c *gin.Context) services.AcquisitionService {
	return services.AcquisitionService{RequestID: middleware.GetRequestID(c)}
}

func GetAcquisitions(c *gin.Context) {
	var req models.AcquisitionSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchAcquisitions(c, req)
}

func SearchAcquisitions(c *gin.Context) {
	var req models.AcquisitionSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchAcquisitions(c, req)
}

func searchAcquisitions(c *gin.Context, req models.AcquisitionSearchRequest) {
	res, err := acquisitionService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetAcquisitionByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := acquisitionService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
