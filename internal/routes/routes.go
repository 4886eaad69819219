package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	"github.com/ShineWorks01/detailing-scheduler/internal/config"
	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/handlers"
	infraRepo "github.com/ShineWorks01/detailing-scheduler/internal/infra/repository"
	"github.com/ShineWorks01/detailing-scheduler/internal/middleware"
	"github.com/ShineWorks01/detailing-scheduler/internal/notify"
	"github.com/ShineWorks01/detailing-scheduler/internal/sweeper"
	ucAppointment "github.com/ShineWorks01/detailing-scheduler/internal/usecase/appointment"
	ucJob "github.com/ShineWorks01/detailing-scheduler/internal/usecase/job"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisClient *redis.Client,
	sw *sweeper.Sweeper,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	jobRepo := infraRepo.NewJobGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewJobNotifier(redisClient)

	settings := scheduling.Settings{
		BayCount:     cfg.BayCount,
		OpeningTime:  cfg.OpeningTime,
		ClosingTime:  cfg.ClosingTime,
		SlotInterval: time.Duration(cfg.SlotIntervalMin) * time.Minute,
		MinLeadTime:  time.Duration(cfg.MinLeadTimeMin) * time.Minute,
	}

	// ======================================================
	// 🧠 USE CASES — JOBS
	// ======================================================
	ensureJobUC := ucJob.NewEnsureJob(appointmentRepo, jobRepo)

	jobProgressUC := ucJob.NewJobProgress(
		jobRepo,
		appointmentRepo,
		notifier,
		auditDispatcher,
		cfg.Timezone,
	)

	jobNotesUC := ucJob.NewJobNotes(jobRepo, auditDispatcher)
	getJobUC := ucJob.NewGetJob(jobRepo, appointmentRepo)
	listJobsUC := ucJob.NewListJobs(jobRepo)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		ensureJobUC,
		settings,
		cfg.Timezone,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		ensureJobUC,
		settings,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	updatePaymentUC := ucAppointment.NewUpdatePayment(
		appointmentRepo,
		auditDispatcher,
		ensureJobUC,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
		cfg.Timezone,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		settings,
		cfg.Timezone,
	)

	checkSlotUC := ucAppointment.NewCheckSlot(
		appointmentRepo,
		settings,
		cfg.Timezone,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, appointmentRepo)
	packageHandler := handlers.NewPackageHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		updatePaymentUC,
		listAppointmentsByDateUC,
		sw,
	)

	jobHandler := handlers.NewJobHandler(
		db,
		jobProgressUC,
		jobNotesUC,
		getJobUC,
		listJobsUC,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		appointmentRepo,
		createAppointmentUC,
		getAvailabilityUC,
		checkSlotUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/packages", publicHandler.ListPackages)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.GET("/check-slot", publicHandler.CheckSlot)
			publicAPI.POST("/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Me)
			secured.GET("/me/appointments", meHandler.MyAppointments)
			secured.GET("/me/job-channel", meHandler.MyJobChannel)

			// cliente logado enxerga o próprio job (checagem no usecase)
			secured.GET("/jobs/:id", jobHandler.Get)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				staff.GET("/packages", packageHandler.List)
				staff.POST("/packages", packageHandler.Create)
				staff.PATCH("/packages/:id", packageHandler.Update)

				staff.POST("/appointments", appointmentHandler.CreateWalkIn)
				staff.GET("/appointments", appointmentHandler.ListByDate)
				staff.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
				staff.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				staff.PATCH("/appointments/:id/payment", appointmentHandler.UpdatePayment)
				staff.POST("/appointments/sweep", appointmentHandler.SweepNow)

				staff.GET("/jobs", jobHandler.List)
				staff.PATCH("/jobs/:id/advance-stage", jobHandler.AdvanceStage)
				staff.PATCH("/jobs/:id/progress", jobHandler.SetProgress)
				staff.POST("/jobs/:id/issue", jobHandler.ReportIssue)
				staff.POST("/jobs/:id/handover", jobHandler.RecordHandover)

				staff.POST("/jobs/:id/notes", jobHandler.AddNote)
				staff.PATCH("/jobs/:id/notes/:noteId", jobHandler.UpdateNote)
				staff.DELETE("/jobs/:id/notes/:noteId", jobHandler.DeleteNote)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
