package bootstrap

import (
	"context"
	"log"
	"time"

	"notekeeper-be/internal/cache"
	"notekeeper-be/internal/config"
	"notekeeper-be/internal/controller"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/mailer"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"

	pktNats "notekeeper-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController  controller.INoteController
	LabelController controller.ILabelController

	// Background services (exposed for main.go to run)
	ReminderService service.IReminderService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS (optional; the note service nil-guards the publisher)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Note cache
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var noteCache cache.NoteCache
	if cfg.Cache.Driver == "memory" {
		noteCache = cache.NewMemoryNoteCache(ttl)
		log.Printf("[INFO] Using note cache: MEMORY")
	} else {
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		noteCache = cache.NewRedisNoteCache(rdb, ttl)
		log.Printf("[INFO] Using note cache: REDIS")
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ReminderTopic, pubSub)
	reminderService := service.NewReminderService(pubSub, cfg.App.ReminderTopic, uowFactory, emailService)
	noteService := service.NewNoteService(uowFactory, noteCache, publisherService, natsPub, sysLogger)
	labelService := service.NewLabelService(uowFactory, noteCache, sysLogger)

	// 5. Controllers
	noteController := controller.NewNoteController(noteService)
	labelController := controller.NewLabelController(labelService)

	return &Container{
		NoteController:  noteController,
		LabelController: labelController,
		ReminderService: reminderService,
		Logger:          sysLogger,
	}
}
