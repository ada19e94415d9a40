package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *Api) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, api.Version)
}
