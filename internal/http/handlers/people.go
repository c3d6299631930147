package handlers

import (
	"net/http"

	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/http/middleware"
	"cbexplorer/internal/services"

	"github.com/gin-gonic/gin"
)

func personService(c *gin.Context) services.PersonService {
	return services.PersonService{RequestID: middleware.GetRequestID(c)}
}

func GetPeople(c *gin.Context) {
	var req models.PersonSearchRequest
	if !BindQueryOrError(c, &req) {
		return
	}
	searchPeople(c, req)
}

func SearchPeople(c *gin.Context) {
	var req models.PersonSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	searchPeople(c, req)
}

func searchPeople(c *gin.Context, req models.PersonSearchRequest) {
	res, err := personService(c).Search(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func GetPersonByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	d, err := personService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func GetPersonByPermalink(c *gin.Context) {
	d, err := personService(c).GetByPermalink(c.Request.Context(), c.Param("permalink"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
