package api

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PopovMP/html-ast/docstore"
	"github.com/PopovMP/html-ast/util"
)

const (
	// api routes
	ParseURL            = "/parse"
	DocumentsCreateURL  = "/documents"
	DocumentsGetURL     = "/documents/:id"
	DocumentsDeleteURL  = "/documents/:id"
	DocumentsElementURL = "/documents/:id/elements/:element_id"
	DocumentsHTMLURL    = "/documents/:id/html"
)

type Service struct {
	config util.Config
	store  docstore.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config and document store.
func NewService(config util.Config, store docstore.Store) (*Service, error) {
	service := &Service{
		config: config,
		store:  store,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response so a stalled client cannot hang a worker.
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// stateless parsing
	router.POST(ParseURL, service.parseHTML)

	// stored documents
	router.POST(DocumentsCreateURL, service.createDocument)
	router.GET(DocumentsGetURL, service.getDocument)
	router.DELETE(DocumentsDeleteURL, service.deleteDocument)
	router.GET(DocumentsElementURL, service.getElementByID)
	router.GET(DocumentsHTMLURL, service.renderDocument)

	server.Handler = router
	service.router = router
}

// handling CORS
func (service *Service) corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if slices.Contains(service.config.AllowedOrigins, origin) {
			ctx.Header("Access-Control-Allow-Origin", origin)
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
		}

		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
