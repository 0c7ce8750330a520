package bootstrap

import (
	"math/rand"
	"time"

	"mindshift-be/internal/config"
	"mindshift-be/internal/controller"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/internal/service"
	"mindshift-be/pkg/automation"
	"mindshift-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController    controller.IChatbotController
	JournalController    controller.IJournalController
	VoiceController      controller.IVoiceController
	AutomationController controller.IAutomationController

	// Background services (exposed for main.go to run)
	WebhookConsumer *automation.WebhookConsumer

	// JournalService is exposed so shutdown can cancel pending autosaves.
	JournalService service.IJournalService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	automationPublisher := automation.NewPublisher(
		cfg.Automation.WebhookURL,
		cfg.Automation.TopicName,
		pubSub,
		sysLogger,
	)
	webhookConsumer := automation.NewWebhookConsumer(
		cfg.Automation.WebhookURL,
		cfg.Automation.TopicName,
		pubSub,
		sysLogger,
	)

	// 3. Speech
	catalog := speech.NewStaticCatalog()
	speaker := speech.NewSpeaker(
		speech.NewLogEngine(sysLogger),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		sysLogger,
	)

	// 4. Services
	voiceService := service.NewVoiceService(uowFactory, catalog, speaker, sysLogger)

	chatbotService := service.NewChatbotService(
		uowFactory,
		automationPublisher,
		speaker,
		voiceService,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.Chat.ReplyDelay,
		sysLogger,
	)

	journalService := service.NewJournalService(
		uowFactory,
		automationPublisher,
		cfg.Chat.AutosaveDebounce,
		sysLogger,
	)

	automationService := service.NewAutomationService(automationPublisher, sysLogger)

	// 5. Controllers
	return &Container{
		ChatbotController:    controller.NewChatbotController(chatbotService),
		JournalController:    controller.NewJournalController(journalService),
		VoiceController:      controller.NewVoiceController(voiceService),
		AutomationController: controller.NewAutomationController(automationService),

		WebhookConsumer: webhookConsumer,
		JournalService:  journalService,
	}
}
