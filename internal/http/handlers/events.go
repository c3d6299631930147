package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func eventService(c *gin.Context) services.EventService {
	return services.EventService{RequestID: middleware.GetRequestID(c)}
}

func GetEvents(c *gin.Context) {
	var req models.EventSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchEvents(c, req)
}

func SearchEvents(c *gin.Context) {
	var req models.EventSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchEvents(c, req)
}

func searchEvents(c *gin.Context, req models.EventSearchRequest) {
	res, err := eventService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetEventByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := eventService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func GetEventByPermalink(c *gin.Context) {
	d, err := eventService(c).GetByPermalink(c.Request.Context(), c.Param("permalink"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
