package bootstrap

import (
	"context"
	"log"
	"time"

	"numero-be/internal/config"
	"numero-be/internal/controller"
	"numero-be/internal/handler"
	"numero-be/internal/pkg/logger"
	"numero-be/internal/repository/unitofwork"
	"numero-be/internal/service"
	"numero-be/internal/websocket"
	"numero-be/pkg/events"
	"numero-be/pkg/llm/factory"
	pktNats "numero-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	KeyboardController   controller.IKeyboardController
	CurriculumController controller.ICurriculumController

	// Background Services (Exposed for main.go to run)
	ConsumerService   service.IConsumerService
	EventRelayService *service.EventRelayService

	// WebSockets
	EditorHandler *handler.EditorHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

// Close releases bus connections. Safe to call once on shutdown.
func (c *Container) Close() {
	for _, fn := range c.closers {
		fn()
	}
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	var closers []func()

	// 2. In-process job queue
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	closers = append(closers, func() { _ = pubSub.Close() })

	// 3. LLM
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		APIKey:        cfg.Keys.GoogleGemini,
		GeminiBaseURL: cfg.Ai.GeminiBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Event bus. The API keeps working without NATS; events are dropped.
	var eventPublisher events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		closers = append(closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		closers = append(closers, natsSub.Close)
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
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Websocket fan-out stays local", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		closers = append(closers, func() { _ = rdb.Close() })
	}
	cancel()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)

	// 5. Services
	curriculumService := service.NewCurriculumService(uowFactory, time.Duration(cfg.Ai.CurriculumTTLMinutes)*time.Minute)
	conversationService := service.NewConversationService(uowFactory)
	publisherService := service.NewPublisherService(cfg.App.NamingTopic, pubSub)
	tutorService := service.NewTutorService(
		uowFactory,
		llmProvider,
		curriculumService,
		eventPublisher,
		publisherService,
		sysLogger,
		cfg.Ai.MaxTokens,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.NamingTopic,
		uowFactory,
		llmProvider,
		eventPublisher,
		sysLogger,
	)
	keyboardService := service.NewKeyboardService()

	var relay *service.EventRelayService
	if natsSub != nil {
		relay = service.NewEventRelayService(natsSub, wsHub, wsLogger)
	}

	return &Container{
		ChatController:       controller.NewChatController(conversationService, tutorService),
		KeyboardController:   controller.NewKeyboardController(keyboardService),
		CurriculumController: controller.NewCurriculumController(curriculumService),

		ConsumerService:   consumerService,
		EventRelayService: relay,

		EditorHandler: handler.NewEditorHandler(wsHub, cfg.Auth.JWTSecret, wsLogger),
		WebSocketHub:  wsHub,

		Logger:  sysLogger,
		closers: closers,
	}
}
