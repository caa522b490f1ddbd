package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aussieedu/edu-service/internal/app/edu/config"
	"aussieedu/edu-service/internal/app/edu/handler"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/edu-service/internal/app/edu/infrastructure/cache"
	"aussieedu/edu-service/internal/app/edu/infrastructure/identity"
	"aussieedu/edu-service/internal/app/edu/infrastructure/messaging"
	"aussieedu/edu-service/internal/app/edu/infrastructure/ratelimit"
	"aussieedu/edu-service/internal/app/edu/infrastructure/scheduler"
	"aussieedu/edu-service/internal/app/edu/infrastructure/storage"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/edu-service/internal/app/edu/service"
	"aussieedu/pkg/logger"
)

const serviceName = "edu-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Log.Level)

	if cfg.Log.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.Log.LogstashAddr, serviceName, cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Log.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	gin.SetMode(cfg.Server.GinMode)

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().
		Str("database", cfg.MongoDB.Database).
		Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	inquiryRepo := repository.NewInquiryRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	reviewRepo, err := repository.NewReviewRepository(db)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to prepare reviews collection")
	}

	// Redis необязателен: без него кэш отключен, а лимитер хранит окна в памяти
	var (
		universityCache infrastructure.UniversityCache = cache.NoopUniversityCache{}
		limiter         infrastructure.RateLimiter
		cronScheduler   *scheduler.CronScheduler
	)

	if cfg.Redis.Enabled() {
		redisClient, err := connectRedis(cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")

		universityCache = cache.NewRedisUniversityCache(redisClient)
		limiter = ratelimit.NewRedisLimiter(redisClient, "ratelimit:reviews:", cfg.RateLimit.ReviewLimit, cfg.RateLimit.ReviewWindow)
	} else {
		memoryLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.ReviewLimit, cfg.RateLimit.ReviewWindow)
		cronScheduler = scheduler.NewCronScheduler(memoryLimiter)
		if err := cronScheduler.Start(cfg.RateLimit.SweepEvery); err != nil {
			logger.Fatal().Err(err).Str("schedule", cfg.RateLimit.SweepEvery).Msg("Failed to start cron scheduler")
		}
		limiter = memoryLimiter
		logger.Warn().Msg("REDIS_ADDR not set, using in-memory rate limiter without university cache")
	}

	var publisher infrastructure.MessagePublisher = messaging.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info().
			Strs("brokers", cfg.Kafka.Brokers).
			Str("topic", cfg.Kafka.Topic).
			Msg("Initialized Kafka producer")
	}
	defer publisher.Close()

	var imageStore infrastructure.ImageStore = storage.NewLocalImageStore(cfg.Storage.LocalBaseURL)
	if cfg.Storage.CloudinaryURL != "" {
		cloudinaryStore, err := storage.NewCloudinaryImageStore(cfg.Storage.CloudinaryURL, cfg.Storage.CloudinaryFolder)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to configure Cloudinary")
		}
		imageStore = cloudinaryStore
		logger.Info().Str("folder", cfg.Storage.CloudinaryFolder).Msg("Review images are uploaded to Cloudinary")
	}

	verifier := identity.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTAudience)

	reviewService := service.NewReviewService(reviewRepo, imageStore, publisher)
	dashboardService := service.NewDashboardService(reviewRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, publisher)
	consultationService := service.NewConsultationService(consultationRepo, publisher)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	universityService := service.NewUniversityService(universityRepo, universityCache)

	router := handler.SetupRoutes(handler.Handlers{
		Inquiry:      handler.NewInquiryHandler(inquiryService),
		Consultation: handler.NewConsultationHandler(consultationService),
		Testimonial:  handler.NewTestimonialHandler(testimonialService),
		University:   handler.NewUniversityHandler(universityService),
		Review:       handler.NewReviewHandler(reviewService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	},
		handler.NewAuthMiddleware(verifier),
		handler.NewRateLimitMiddleware(limiter),
		cfg.CORS.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // загрузка картинок в Cloudinary может занять время
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting AussieEdu API")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down AussieEdu API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	if cronScheduler != nil {
		cronScheduler.Stop()
	}

	logger.Info().Msg("AussieEdu API stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var client *mongo.Client
	var err error

	for i := 0; i < 10; i++ {
		client, err = pingMongoDB(clientOptions)
		if err == nil {
			return client, nil
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to MongoDB, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}

func pingMongoDB(clientOptions *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
