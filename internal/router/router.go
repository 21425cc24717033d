package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/cctvshop/storefront-api/internal/handler/auth"
	"github.com/cctvshop/storefront-api/internal/handler/booking"
	"github.com/cctvshop/storefront-api/internal/handler/catalog"
	"github.com/cctvshop/storefront-api/internal/handler/health"
	"github.com/cctvshop/storefront-api/internal/handler/payment"
	"github.com/cctvshop/storefront-api/internal/handler/technician"
	"github.com/cctvshop/storefront-api/internal/handler/user"
	"github.com/cctvshop/storefront-api/internal/middleware"
)

type Router struct {
	engine      *gin.Engine
	authMW      *middleware.AuthMiddleware
	healthH     *health.Handler
	catalogH    *catalog.Handler
	bookingH    *booking.Handler
	authH       *auth.Handler
	userH       *user.Handler
	technicianH *technician.Handler
	paymentH    *payment.Handler
	metrics     *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	authMW *middleware.AuthMiddleware,
	healthH *health.Handler,
	catalogH *catalog.Handler,
	bookingH *booking.Handler,
	authH *auth.Handler,
	userH *user.Handler,
	technicianH *technician.Handler,
	paymentH *payment.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	registerValidators()

	r := &Router{
		engine:      engine,
		authMW:      authMW,
		healthH:     healthH,
		catalogH:    catalogH,
		bookingH:    bookingH,
		authH:       authH,
		userH:       userH,
		technicianH: technicianH,
		paymentH:    paymentH,
		metrics:     newRouterMetrics(),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

// registerValidators adds the booking date format check to gin's binding
// validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

func newRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path,
			strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Setup wires the route table. Paths mirror the storefront frontend's
// expectations; the guard chain on privileged routes is Authenticate then
// RequireAdmin.
func (r *Router) Setup() {
	authenticate := r.authMW.Authenticate()
	requireAdmin := r.authMW.RequireAdmin()

	r.engine.GET("/", r.healthH.Root)
	r.engine.GET("/health", r.healthH.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.engine.GET("/services", r.catalogH.ListServices)
	r.engine.GET("/serviceSpecialty", r.catalogH.ListServiceNames)

	r.engine.GET("/servicesBooking", authenticate, r.bookingH.ListBookings)
	r.engine.POST("/servicesBooking", r.bookingH.CreateBooking)
	r.engine.GET("/servicesBooking/:id", r.bookingH.GetBooking)

	r.engine.POST("/create-payment-intent", r.paymentH.CreateIntent)
	r.engine.POST("/payments", r.paymentH.RecordPayment)

	r.engine.GET("/jwt", r.authH.IssueToken)

	r.engine.GET("/users", r.userH.ListUsers)
	r.engine.GET("/users/admin/:email", r.userH.CheckAdmin)
	r.engine.POST("/users", r.userH.CreateUser)
	r.engine.PUT("/users/admin/:id", authenticate, requireAdmin, r.userH.PromoteToAdmin)

	r.engine.GET("/technicians", r.technicianH.ListTechnicians)
	r.engine.POST("/technician", authenticate, requireAdmin, r.technicianH.CreateTechnician)
	r.engine.DELETE("/technicians/:id", authenticate, r.technicianH.DeleteTechnician)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
