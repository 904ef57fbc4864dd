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
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink-inc/bloodlink-api/consts"
	"github.com/bloodlink-inc/bloodlink-api/external/geoinfo"
	"github.com/bloodlink-inc/bloodlink-api/external/smsgateway"
	"github.com/bloodlink-inc/bloodlink-api/logmodule"
	"github.com/bloodlink-inc/bloodlink-api/store"
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
	store      store.BloodlinkCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server

	// External services
	smsClient smsgateway.SMSGateway

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey,
	backgroundEnqueuer *machinery.Server) *Server {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	geoClient, err := geoinfo.New(viper.GetString("map.key"))
	if err != nil {
		log.WithError(err).Panic("create geo client")
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
	)

	return &Server{
		store:         store.NewBloodlinkStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
		smsClient:     smsgateway.New(httpClient),
		httpClient:    httpClient,
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
	apiRoute.GET("/regions/:state", s.regionDetail)

	apiRoute.POST("/auth/otp", s.requestOTP)
	apiRoute.POST("/auth", s.requestJWT)

	// the public feed is readable without an account
	publicCORS := cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	})

	// a route segment may carry either a parameter or static children,
	// never both, so the owner listings live under /accounts/me and the
	// live feed under /feed
	publicFeedRoute := apiRoute.Group("/requests")
	publicFeedRoute.Use(publicCORS)
	{
		publicFeedRoute.GET("", s.listRequests)
	}

	liveFeedRoute := apiRoute.Group("/feed")
	liveFeedRoute.Use(publicCORS)
	{
		liveFeedRoute.GET("/live", s.liveFeed)
	}

	// api route other than the ones above will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
		accountRoute.DELETE("/me", s.accountDelete)

		accountRoute.GET("/me/requests", s.myRequests)
		accountRoute.GET("/me/appointments", s.myAppointments)
		accountRoute.GET("/me/camps", s.myCampRequests)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.updateRequest)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
	}

	appointmentRoute := apiRoute.Group("/appointments")
	appointmentRoute.Use(s.recognizeAccountMiddleware())
	{
		appointmentRoute.GET("/slots", s.listSlots)
	}

	campRoute := apiRoute.Group("/camps")
	campRoute.Use(s.recognizeAccountMiddleware())
	{
		campRoute.POST("", s.createCampRequest)
		campRoute.GET("/:campID", s.getCampRequest)
		campRoute.PATCH("/:campID", s.updateCampRequest)
		campRoute.DELETE("/:campID", s.deleteCampRequest)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/camps/pending", s.adminPendingCamps)
		secretRoute.PATCH("/camps/:campID/review", s.adminReviewCamp)
		secretRoute.PATCH("/appointments/:appointmentID/review", s.adminReviewAppointment)
		secretRoute.PATCH("/appointments/:appointmentID/close", s.adminCloseAppointment)
		secretRoute.POST("/expire-requests", s.adminExpireRequests)
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
	// Ping both stores
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
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
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Bloodlink 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

// regionDetail returns the selectable districts and constituencies of a
// state, for clients to build location pickers.
func (s *Server) regionDetail(c *gin.Context) {
	region, err := consts.StateRegion(c.Param("state"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownState, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"districts":      region.Districts,
		"constituencies": region.Constituencies,
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
