package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/docstore"
	"github.com/PopovMP/html-ast/dom"
	"github.com/PopovMP/html-ast/util"
)

// length of generated document IDs
const documentIDLength = 12

type createDocumentRequest struct {
	HTML string `json:"html" binding:"required"`
}

type createDocumentResponse struct {
	ID       string    `json:"id"`
	Document *dom.Node `json:"document"`
}

// createDocument parses the posted markup and keeps the tree in the
// document store under a generated ID for the configured TTL.
func (service *Service) createDocument(ctx *gin.Context) {
	var req createDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	root, err := dom.Parse(req.HTML)
	if err != nil {
		ctx.JSON(parseErrorStatus(err), NewErrorResponse(err))
		return
	}

	id := util.RandomString(documentIDLength)

	doc := docstore.StoredDocument{
		HTML:      req.HTML,
		Root:      root,
		CreatedAt: time.Now(),
	}

	if err := service.store.SaveDocument(ctx, id, doc, service.config.DocumentTTL); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, createDocumentResponse{
		ID:       id,
		Document: root,
	})
}
