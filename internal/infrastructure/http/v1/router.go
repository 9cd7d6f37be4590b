// Package v1 assembles the HTTP API: repositories, services, handlers
// and routes.
package v1

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"crmdesk/internal/core/session"
	"crmdesk/internal/domain"
	"crmdesk/internal/domain/auth"
	"crmdesk/internal/domain/records/client"
	"crmdesk/internal/domain/records/invoice"
	"crmdesk/internal/domain/records/lead"
	"crmdesk/internal/domain/records/meeting"
	"crmdesk/internal/domain/records/payment"
	"crmdesk/internal/domain/records/project"
	"crmdesk/internal/domain/records/task"
	"crmdesk/internal/domain/records/teammate"
	"crmdesk/internal/domain/trash"
	"crmdesk/internal/infrastructure/http/v1/handlers"
	"crmdesk/internal/infrastructure/http/v1/middleware"
	"crmdesk/internal/infrastructure/kv"
	"crmdesk/internal/infrastructure/notify"
	"crmdesk/internal/infrastructure/storage/postgres"
	"crmdesk/internal/infrastructure/storage/postgres/auth_repo"
	"crmdesk/internal/infrastructure/storage/postgres/record_repo"
	"crmdesk/pkg/logger"
	"crmdesk/pkg/numerator"
)

// Deps carries the infrastructure the router assembles the API from.
type Deps struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	KV        kv.Store
	JWTSecret string
	Notifier  notify.Notifier
	Log       *logger.Logger
}

// NewRouter builds the gin engine with all routes wired.
func NewRouter(deps Deps) (*gin.Engine, error) {
	db := deps.TxManager

	// Restore targets: every trashable table with its column set, so
	// stale snapshot payloads are filtered down to what the table takes.
	restoreStore := record_repo.NewRestoreStore(db)
	restoreStore.Register("clients", postgres.ExtractDBColumns[client.Client]())
	restoreStore.Register("tasks", postgres.ExtractDBColumns[task.Task]())
	restoreStore.Register("meetings", postgres.ExtractDBColumns[meeting.Meeting]())
	restoreStore.Register("invoices", postgres.ExtractDBColumns[invoice.Invoice]())
	restoreStore.Register("projects", postgres.ExtractDBColumns[project.Project]())
	restoreStore.Register("teams", postgres.ExtractDBColumns[teammate.Teammate]())
	restoreStore.Register("leads", postgres.ExtractDBColumns[lead.Lead]())
	restoreStore.Register("payments", postgres.ExtractDBColumns[payment.Payment]())

	ledger, err := trash.NewLedger(deps.KV, restoreStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create trash ledger: %w", err)
	}

	num := numerator.New(deps.Pool)

	clientSvc := client.NewService(record_repo.NewClientRepo(db), deps.TxManager)
	taskSvc := task.NewService(record_repo.NewTaskRepo(db), deps.TxManager)
	meetingSvc := meeting.NewService(record_repo.NewMeetingRepo(db), deps.TxManager)
	invoiceSvc := invoice.NewService(record_repo.NewInvoiceRepo(db), deps.TxManager, num)
	projectSvc := project.NewService(record_repo.NewProjectRepo(db), deps.TxManager)
	teammateSvc := teammate.NewService(record_repo.NewTeammateRepo(db), deps.TxManager)
	leadSvc := lead.NewService(record_repo.NewLeadRepo(db), deps.TxManager)
	paymentSvc := payment.NewService(record_repo.NewPaymentRepo(db), deps.TxManager)

	registerCapture(clientSvc.RecordService, ledger, trash.KindClient, deps.Notifier,
		func(c *client.Client) string { return c.Name })
	registerCapture(taskSvc.RecordService, ledger, trash.KindTask, deps.Notifier,
		func(t *task.Task) string { return t.Title })
	registerCapture(meetingSvc.RecordService, ledger, trash.KindMeeting, deps.Notifier,
		func(m *meeting.Meeting) string { return m.Title })
	registerCapture(invoiceSvc.RecordService, ledger, trash.KindInvoice, deps.Notifier,
		func(inv *invoice.Invoice) string { return inv.Number })
	registerCapture(projectSvc.RecordService, ledger, trash.KindProject, deps.Notifier,
		func(p *project.Project) string { return p.Name })
	registerCapture(teammateSvc.RecordService, ledger, trash.KindTeam, deps.Notifier,
		func(t *teammate.Teammate) string { return t.Name })
	registerCapture(leadSvc.RecordService, ledger, trash.KindLead, deps.Notifier,
		func(l *lead.Lead) string { return l.Name })
	registerCapture(paymentSvc.RecordService, ledger, trash.KindPayment, deps.Notifier,
		func(p *payment.Payment) string { return "payment " + p.Amount.String() })

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(deps.JWTSecret))
	authService := auth.NewService(auth_repo.NewUserRepo(db), deps.TxManager, jwtService, auth.DefaultServiceConfig())

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, authService)
	trashHandler := handlers.NewTrashHandler(base, ledger)

	kvPinger, _ := deps.KV.(handlers.Pinger)
	healthHandler := handlers.NewHealthHandler(deps.Pool, kvPinger)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(deps.Log),
		middleware.ErrorHandler(),
	)

	engine.GET("/health", healthHandler.Live)
	engine.GET("/health/live", healthHandler.Live)
	engine.GET("/health/ready", healthHandler.Ready)
	engine.GET("/health/info", healthHandler.Info)

	api := engine.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(jwtService))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)

	registerRecordRoutes(protected, "clients", handlers.NewClientHandler(base, clientSvc))
	registerRecordRoutes(protected, "tasks", handlers.NewTaskHandler(base, taskSvc))
	registerRecordRoutes(protected, "meetings", handlers.NewMeetingHandler(base, meetingSvc))
	registerRecordRoutes(protected, "invoices", handlers.NewInvoiceHandler(base, invoiceSvc))
	registerRecordRoutes(protected, "projects", handlers.NewProjectHandler(base, projectSvc))
	registerRecordRoutes(protected, "teams", handlers.NewTeammateHandler(base, teammateSvc))
	registerRecordRoutes(protected, "leads", handlers.NewLeadHandler(base, leadSvc))
	registerRecordRoutes(protected, "payments", handlers.NewPaymentHandler(base, paymentSvc))

	protected.GET("/trash", trashHandler.List)
	protected.POST("/trash/:id/restore", trashHandler.Restore)
	protected.DELETE("/trash/:id", trashHandler.Purge)
	protected.DELETE("/trash", trashHandler.Clear)

	return engine, nil
}

// recordRoutes is the handler surface every record endpoint set exposes.
type recordRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerRecordRoutes(g *gin.RouterGroup, path string, h recordRoutes) {
	grp := g.Group("/" + path)
	grp.GET("", h.List)
	grp.POST("", h.Create)
	grp.GET("/:id", h.Get)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
}

// registerCapture hooks a service's deletes into the trash ledger and the
// activity stream. Runs only after the row is confirmed gone.
func registerCapture[T domain.Record](
	svc *domain.RecordService[T],
	ledger *trash.Ledger,
	kind trash.Kind,
	notifier notify.Notifier,
	displayName func(rec T) string,
) {
	svc.Hooks().OnAfterDelete(trash.Capture(ledger, kind,
		func(rec T) string { return rec.GetID().String() },
		func(rec T) (string, map[string]any) {
			return displayName(rec), postgres.StructToMap(rec)
		},
	))
	svc.Hooks().OnAfterDelete(func(ctx context.Context, rec T) error {
		notifier.Notify(ctx, notify.NewEvent(
			"record.deleted",
			string(kind),
			rec.GetID().String(),
			session.UserID(ctx),
			fmt.Sprintf("%s %q moved to trash", kind, displayName(rec)),
		))
		return nil
	})
}
