package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cnet-digital/backoffice-api/directory"
	"github.com/cnet-digital/backoffice-api/logmodule"
	"github.com/cnet-digital/backoffice-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store     store.BackOfficeCore
	fileStore store.FileStore

	// Employee roster
	directory *directory.Directory

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	fileStore store.FileStore,
	roster *directory.Directory,
	jwtKey *rsa.PrivateKey,
	background *machinery.Server) *Server {
	return &Server{
		store:         store.NewBackOfficeStore(ormDB),
		fileStore:     fileStore,
		directory:     roster,
		jwtPrivateKey: jwtKey,
		background:    background,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.submitRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.PATCH("/:requestID/status", s.updateRequestStatus)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
		requestRoute.POST("/:requestID/take-in-charge", s.takeInCharge)
		requestRoute.POST("/:requestID/release", s.releaseRequest)
		requestRoute.POST("/:requestID/attachment", s.attachDocument)
		requestRoute.GET("/:requestID/attestation", s.downloadAttestation)
	}

	apiRoute.GET("/attachments/*ref", s.downloadAttachment)

	publicationRoute := apiRoute.Group("/publications")
	{
		publicationRoute.POST("", s.createPublication)
		publicationRoute.GET("", s.listPublications)
		publicationRoute.PATCH("/:publicationID", s.updatePublication)
		publicationRoute.DELETE("/:publicationID", s.deletePublication)
	}

	statisticsRoute := apiRoute.Group("/statistics")
	statisticsRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		statisticsRoute.GET("", s.requestStatistics)
		statisticsRoute.GET("/export", s.exportStatistics)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/purge-expired-publications", s.adminPurgeExpiredPublications)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "BackOffice 1.0",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
