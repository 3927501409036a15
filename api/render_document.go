package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/docstore"
	"github.com/PopovMP/html-ast/render"
)

// renderDocument serializes a stored document's tree back to markup.
func (service *Service) renderDocument(ctx *gin.Context) {
	id := ctx.Param("id")

	doc, err := service.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			err := fmt.Errorf("document with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	html, err := render.HTML(doc.Root)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
