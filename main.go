package main

import (
	api "wedding-planner-backend/cmd/api"
	authdomain "wedding-planner-backend/internal/auth/domain"
	authRepo "wedding-planner-backend/internal/auth/repository"
	authUsecase "wedding-planner-backend/internal/auth/usecase"
	checklistdomain "wedding-planner-backend/internal/checklist/domain"
	checklistRepo "wedding-planner-backend/internal/checklist/repository"
	checklistUsecase "wedding-planner-backend/internal/checklist/usecase"
	emaildomain "wedding-planner-backend/internal/email/domain"
	emailRepo "wedding-planner-backend/internal/email/repository"
	emailUsecase "wedding-planner-backend/internal/email/usecase"
	settingsdomain "wedding-planner-backend/internal/settings/domain"
	settingsRepo "wedding-planner-backend/internal/settings/repository"
	settingsUsecase "wedding-planner-backend/internal/settings/usecase"
	taskdomain "wedding-planner-backend/internal/task/domain"
	taskRepo "wedding-planner-backend/internal/task/repository"
	taskUsecase "wedding-planner-backend/internal/task/usecase"
	vendordomain "wedding-planner-backend/internal/vendors/domain"
	vendorRepo "wedding-planner-backend/internal/vendors/repository"
	vendorUsecase "wedding-planner-backend/internal/vendors/usecase"
	"wedding-planner-backend/pkg/ai"
	"wedding-planner-backend/pkg/config"
	"wedding-planner-backend/pkg/database"
	"wedding-planner-backend/pkg/gmail"
	"wedding-planner-backend/pkg/imapmail"
	"wedding-planner-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.New("main")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&emaildomain.EmailCache{},
		&taskdomain.Task{},
		&vendordomain.Vendor{},
		&vendordomain.QuestionAnswer{},
		&checklistdomain.Progress{},
		&settingsdomain.Settings{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	emailCacheRepository := emailRepo.NewEmailCacheRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	vendorRepository := vendorRepo.NewGormVendorRepository(db)
	checklistRepository := checklistRepo.NewGormChecklistRepository(db)
	settingsRepository := settingsRepo.NewGormSettingsRepository(db)

	// Select mailbox provider
	var mailProvider emailUsecase.MailProvider
	switch cfg.MailProvider {
	case "imap":
		mailProvider = imapmail.NewService(cfg.IMAPHost, cfg.IMAPPort, cfg.IMAPUsername, cfg.IMAPPassword)
		log.Info().Str("host", cfg.IMAPHost).Msg("using IMAP mail provider")
	default:
		mailProvider = gmail.NewService()
		log.Info().Msg("using Gmail mail provider")
	}

	// Initialize AI summarizer
	completer, err := ai.NewCompleter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize AI provider")
	}
	summarizer := ai.NewSummarizer(completer)
	log.Info().Str("provider", cfg.AIProvider).Msg("AI summarizer initialized")

	// Initialize use cases (dependency injection)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)
	emailUc := emailUsecase.NewEmailUsecase(emailCacheRepository, mailProvider, summarizer, taskUc, cfg)
	vendorUc := vendorUsecase.NewVendorUsecase(vendorRepository)
	checklistUc := checklistUsecase.NewChecklistUsecase(checklistRepository, taskUc, vendorUc)
	settingsUc := settingsUsecase.NewSettingsUsecase(settingsRepository)
	authUc := authUsecase.NewAuthUsecase(userRepository, authUsecase.NewAllowPolicy(cfg.AllowedEmails), cfg)

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(authUc, emailUc, taskUc, vendorUc, checklistUc, settingsUc, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
