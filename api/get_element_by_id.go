package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/docstore"
	"github.com/PopovMP/html-ast/dom"
)

type getElementResponse struct {
	Element *dom.Node `json:"element"`
}

// getElementByID looks up an element by its "id" attribute inside a stored
// document's tree.
func (service *Service) getElementByID(ctx *gin.Context) {
	id := ctx.Param("id")
	elementID := ctx.Param("element_id")

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

	element, ok := dom.GetElementByID(doc.Root, elementID)
	if !ok {
		err := fmt.Errorf("no element with id [%s] in document [%s]", elementID, id)
		ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, getElementResponse{Element: element})
}
