package handler

import (
	"net/http"
	"time"

	"aussieedu/pkg/logger"
	"aussieedu/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "edu-service"

// Handlers - все HTTP обработчики сервиса
type Handlers struct {
	Inquiry      *InquiryHandler
	Consultation *ConsultationHandler
	Testimonial  *TestimonialHandler
	University   *UniversityHandler
	Review       *ReviewHandler
	Dashboard    *DashboardHandler
}

// SetupRoutes собирает gin роутер со всеми маршрутами API
func SetupRoutes(h Handlers, authMiddleware *AuthMiddleware, rateLimit *RateLimitMiddleware, allowedOrigins []string) *gin.Engine {
	// Лишние поля в JSON - ошибка клиента, а не молча игнорируемые данные
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(serviceName))
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AussieEdu API is running")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	inquiries := api.Group("/inquiries")
	{
		inquiries.GET("", h.Inquiry.ListInquiries)
		inquiries.GET("/user/:email", h.Inquiry.ListInquiriesByEmail)
		inquiries.GET("/:id", h.Inquiry.GetInquiry)
		inquiries.POST("", h.Inquiry.CreateInquiry)
		inquiries.PATCH("/:id", h.Inquiry.UpdateInquiry)
		inquiries.DELETE("/:id", h.Inquiry.DeleteInquiry)
	}

	consultations := api.Group("/consultations")
	{
		consultations.GET("", h.Consultation.ListConsultations)
		consultations.GET("/:id", h.Consultation.GetConsultation)
		consultations.POST("", h.Consultation.BookConsultation)
		consultations.PATCH("/:id", h.Consultation.UpdateConsultation)
		consultations.DELETE("/:id", h.Consultation.DeleteConsultation)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", h.Testimonial.ListTestimonials)
		testimonials.GET("/featured", h.Testimonial.ListFeaturedTestimonials)
		testimonials.GET("/:id", h.Testimonial.GetTestimonial)
		testimonials.POST("", h.Testimonial.CreateTestimonial)
		testimonials.PATCH("/:id", h.Testimonial.UpdateTestimonial)
		testimonials.DELETE("/:id", h.Testimonial.DeleteTestimonial)
	}

	universities := api.Group("/universities")
	{
		universities.GET("", h.University.ListUniversities)
		universities.GET("/:id", h.University.GetUniversity)
		universities.POST("", h.University.CreateUniversity)
		universities.PATCH("/:id", h.University.UpdateUniversity)
		universities.DELETE("/:id", h.University.DeleteUniversity)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Review.ListReviews)
		reviews.GET("/:id", h.Review.GetReview)
		reviews.POST("/:id/vote", h.Review.VoteReview)

		// Лимит считается только для аутентифицированных запросов на создание
		reviews.POST("", authMiddleware.Authenticate(), rateLimit.Limit(), h.Review.SubmitReview)
		reviews.POST("/:id/report", authMiddleware.Authenticate(), h.Review.ReportReview)
		reviews.PATCH("/:id/status", authMiddleware.Authenticate(), h.Review.ModerateReview)
	}

	api.GET("/dashboard", h.Dashboard.GetStats)

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}

	return config
}
