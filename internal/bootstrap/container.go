package bootstrap

import (
	"context"
	"log"
	"time"

	"hireup-be/internal/config"
	"hireup-be/internal/controller"
	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/pkg/mailer"
	"hireup-be/internal/pkg/quota"
	"hireup-be/internal/repository/memory"
	"hireup-be/internal/repository/unitofwork"
	"hireup-be/internal/service"
	"hireup-be/internal/websocket"
	"hireup-be/pkg/ranking"

	pkgNats "hireup-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ApplicationController controller.IApplicationController
	AgentController       controller.IAgentController
	DashboardController   controller.IDashboardController

	// Background services (main.go runs these)
	ActivityConsumer service.IActivityConsumerService
	Notifier         *service.NotifierService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for dashboard activity
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub for company dashboards
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Ranking provider: OpenAI when configured, overlap ranker otherwise
	var provider ranking.Provider
	if cfg.OpenAI.APIKey != "" {
		provider = ranking.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		log.Printf("[INFO] Using ranking provider: OPENAI (%s)", cfg.OpenAI.Model)
	} else {
		log.Printf("[INFO] No OPENAI_API_KEY set, using fallback skill-overlap ranker")
	}

	rankingCache := memory.NewRankingCache(time.Duration(cfg.Hiring.RankingCacheTTLSeconds) * time.Second)
	activityRepo := memory.NewActivityRepository()
	applyQuota := quota.NewDailyApplyQuota(rdb, cfg.Hiring.ApplyDailyLimit)

	publisherService := service.NewPublisherService(cfg.Hiring.ActivityTopic, pubSub)
	activityConsumer := service.NewActivityConsumerService(pubSub, cfg.Hiring.ActivityTopic, activityRepo)

	applicationService := service.NewApplicationService(uowFactory, publisherService, natsPub, applyQuota, sysLogger)
	agentService := service.NewAgentService(uowFactory, sysLogger)
	rankingService := service.NewRankingService(uowFactory, provider, rankingCache, natsPub, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, activityRepo)

	notifier := service.NewNotifierService(uowFactory, natsSub, wsHub, emailService, wsLogger)
	if natsSub != nil {
		go notifier.Start()
	}

	return &Container{
		ApplicationController: controller.NewApplicationController(applicationService),
		AgentController:       controller.NewAgentController(agentService, rankingService),
		DashboardController:   controller.NewDashboardController(dashboardService, wsHub, sysLogger),

		ActivityConsumer: activityConsumer,
		Notifier:         notifier,
		WebSocketHub:     wsHub,
	}
}
