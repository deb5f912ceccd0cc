package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/curalink-dev/curalink-server/internal/assistant"
	"github.com/curalink-dev/curalink-server/internal/audit"
	"github.com/curalink-dev/curalink-server/internal/config"
	"github.com/curalink-dev/curalink-server/internal/handlers"
	infraRepo "github.com/curalink-dev/curalink-server/internal/infra/repository"
	"github.com/curalink-dev/curalink-server/internal/middleware"
	"github.com/curalink-dev/curalink-server/internal/models"
	"github.com/curalink-dev/curalink-server/internal/store"
	ucRequest "github.com/curalink-dev/curalink-server/internal/usecase/request"
	"github.com/curalink-dev/curalink-server/internal/wallet"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, st *store.Store, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	requestRepo := infraRepo.NewRequestStoreRepository(st)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	walletSvc, err := wallet.NewService(db, cfg.MPAccessToken)
	if err != nil {
		log.Fatalf("failed to init wallet service: %v", err)
	}

	chatAssistant := assistant.New()

	// ======================================================
	// USE CASES — APPOINTMENT REQUESTS
	// ======================================================
	createRequestUC := ucRequest.NewCreateRequest(
		requestRepo,
		auditDispatcher,
		cfg.RejectPastBookings,
	)

	acceptRequestUC := ucRequest.NewAcceptRequest(
		requestRepo,
		auditDispatcher,
	)

	rejectRequestUC := ucRequest.NewRejectRequest(
		requestRepo,
		auditDispatcher,
	)

	completeRequestUC := ucRequest.NewCompleteRequest(
		requestRepo,
		auditDispatcher,
	)

	cancelRequestUC := ucRequest.NewCancelRequest(
		requestRepo,
		auditDispatcher,
	)

	listForDoctorUC := ucRequest.NewListForDoctor(requestRepo)
	listForPatientUC := ucRequest.NewListForPatient(requestRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	requestHandler := handlers.NewRequestHandler(
		db,
		createRequestUC,
		acceptRequestUC,
		rejectRequestUC,
		completeRequestUC,
		cancelRequestUC,
		listForDoctorUC,
		listForPatientUC,
	)

	recordHandler := handlers.NewMedicalRecordHandler(db, auditDispatcher)
	walletHandler := handlers.NewWalletHandler(db, walletSvc, requestRepo, auditDispatcher)
	medicineHandler := handlers.NewMedicineHandler(db)
	assistantHandler := handlers.NewAssistantHandler(chatAssistant)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/public/medicines", medicineHandler.List)
		api.POST("/public/medicines/verify", medicineHandler.Verify)

		api.POST("/assistant/chat", assistantHandler.Chat)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PATIENT — APPOINTMENT REQUESTS
			// ------------------------------
			patient := secured.Group("/me")
			patient.Use(middleware.RequireRole(models.RolePatient))
			{
				patient.POST("/requests", requestHandler.Create)
				patient.GET("/requests", requestHandler.ListMine)
				patient.PATCH("/requests/:id/cancel", requestHandler.Cancel)

				patient.GET("/records", recordHandler.ListMine)

				patient.GET("/wallet", walletHandler.GetBalance)
				patient.GET("/wallet/transactions", walletHandler.ListTransactions)
				patient.POST("/wallet/topup", walletHandler.Topup)
				patient.POST("/wallet/topup/confirm", walletHandler.TopupConfirm)
				patient.POST("/wallet/pay", walletHandler.Pay)
			}

			// ------------------------------
			// DOCTOR — REVIEW QUEUE
			// ------------------------------
			doctor := secured.Group("/doctor")
			doctor.Use(middleware.RequireRole(models.RoleDoctor))
			{
				doctor.GET("/requests", requestHandler.ListForDoctor)
				doctor.GET("/requests/pending", requestHandler.ListPending)
				doctor.PATCH("/requests/:id/accept", requestHandler.Accept)
				doctor.PATCH("/requests/:id/reject", requestHandler.Reject)
				doctor.PATCH("/requests/:id/complete", requestHandler.Complete)

				doctor.POST("/records", recordHandler.Create)
				doctor.GET("/records", recordHandler.ListAuthored)

				doctor.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// SHARED — RECORDS
			// ------------------------------
			secured.GET("/records/:id", recordHandler.Get)
			secured.POST("/records/:id/attachments", recordHandler.UploadAttachment)
			secured.GET("/attachments/:id", recordHandler.DownloadAttachment)
		}
	}
}
