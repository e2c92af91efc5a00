package bootstrap

import (
	"context"

	"mentoria-be/internal/config"
	"mentoria-be/internal/controller"
	"mentoria-be/internal/handler"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/mailer"
	"mentoria-be/internal/repository/implementation"
	"mentoria-be/internal/repository/memory"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/internal/service"
	"mentoria-be/internal/websocket"
	"mentoria-be/pkg/chatbot"
	"mentoria-be/pkg/events"
	"mentoria-be/pkg/lock"
	"mentoria-be/pkg/payment"

	pktNats "mentoria-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PaymentController   controller.IPaymentController
	MeetingController   controller.IMeetingController
	ComplaintController controller.IComplaintController
	SlotController      controller.ISlotController
	MentorController    controller.IMentorController
	PlanController      controller.IPlanController
	AdminController     controller.IAdminController
	ChatbotController   controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Email queue
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	emailQueue := service.NewEmailQueue(pubSub, cfg.App.EmailTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EmailTopic, emailService, sysLogger)

	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var publisher events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS publisher, domain events disabled", map[string]interface{}{"error": err.Error()})
	} else {
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS subscriber", map[string]interface{}{"error": err.Error()})
		natsSub = nil
	} else {
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	slotHolder, err := lock.NewHolder(ctx, rdb)
	if err != nil {
		// Single-instance fallback; holds are then local to this process.
		sysLogger.Warn("Bootstrap", "Redis unavailable, slot holds kept in memory", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)

	// 4. Services
	gateway := payment.NewStripeGateway(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
	)
	checkoutService := service.NewCheckoutService(
		uowFactory,
		gateway,
		slotHolder,
		emailQueue,
		publisher,
		sysLogger,
		service.CheckoutOptions{
			Currency:          cfg.Stripe.Currency,
			HoldTTL:           cfg.Booking.SlotHoldTTL,
			BalanceRetryDelay: cfg.Booking.BalanceRetryDelay,
		},
	)

	meetingService := service.NewMeetingService(uowFactory, emailQueue, publisher, sysLogger)
	complaintService := service.NewComplaintService(uowFactory, emailQueue, publisher, sysLogger, cfg.Booking.ComplaintEligibilityWindow)
	slotService := service.NewSlotService(uowFactory, slotHolder, sysLogger)
	planService := service.NewPlanService(uowFactory, sysLogger)
	discountService := service.NewDiscountService(uowFactory, sysLogger)
	mentorService := service.NewMentorService(uowFactory, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// Chatbot
	completer := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini, cfg.Chatbot.BaseURL, cfg.Chatbot.Model)
	sessionRepo := memory.NewSessionRepository(cfg.Chatbot.SessionTTL)
	chatbotService := service.NewChatbotService(
		completer,
		sessionRepo,
		mentorService,
		meetingService,
		sysLogger,
		cfg.Chatbot.MaxToolRounds,
		cfg.Stripe.Currency,
	)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 6. Controllers
	c.PaymentController = controller.NewPaymentController(checkoutService)
	c.MeetingController = controller.NewMeetingController(meetingService)
	c.ComplaintController = controller.NewComplaintController(complaintService)
	c.SlotController = controller.NewSlotController(slotService)
	c.MentorController = controller.NewMentorController(mentorService, feedbackService)
	c.PlanController = controller.NewPlanController(planService, discountService)
	c.AdminController = controller.NewAdminController(adminService)
	c.ChatbotController = controller.NewChatbotController(chatbotService)

	c.ConsumerService = consumerService
	c.NotificationService = notifService
	c.NotificationHandler = notifHandler
	c.WebSocketHub = wsHub
	return c
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
