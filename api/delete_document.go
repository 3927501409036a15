package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (service *Service) deleteDocument(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := service.store.DeleteDocument(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
