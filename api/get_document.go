package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/docstore"
	"github.com/PopovMP/html-ast/dom"
)

type getDocumentResponse struct {
	ID       string    `json:"id"`
	HTML     string    `json:"html"`
	Document *dom.Node `json:"document"`
}

func (service *Service) getDocument(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, getDocumentResponse{
		ID:       id,
		HTML:     doc.HTML,
		Document: doc.Root,
	})
}
