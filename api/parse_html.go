package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/dom"
)

type parseHTMLRequest struct {
	HTML string `json:"html" binding:"required"`
}

type parseHTMLResponse struct {
	Document *dom.Node `json:"document"`
}

// parseHTML parses the posted markup and returns the tree without storing it.
func (service *Service) parseHTML(ctx *gin.Context) {
	var req parseHTMLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	root, err := dom.Parse(req.HTML)
	if err != nil {
		ctx.JSON(parseErrorStatus(err), NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, parseHTMLResponse{Document: root})
}

// parseErrorStatus maps parser failures to HTTP statuses. Both sentinel
// errors are the client's fault; anything else would be a bug.
func parseErrorStatus(err error) int {
	if errors.Is(err, dom.ErrUnknownTag) || errors.Is(err, dom.ErrUnexpectedEOF) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
