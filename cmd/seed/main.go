// Command seed prepares a development database: applies the schema,
// creates a demo user and fills the dashboard with sample records.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"crmdesk/internal/config"
	"crmdesk/internal/core/session"
	"crmdesk/internal/domain/auth"
	"crmdesk/internal/domain/records/client"
	"crmdesk/internal/domain/records/invoice"
	"crmdesk/internal/domain/records/lead"
	"crmdesk/internal/domain/records/meeting"
	"crmdesk/internal/domain/records/payment"
	"crmdesk/internal/domain/records/project"
	"crmdesk/internal/domain/records/task"
	"crmdesk/internal/domain/records/teammate"
	"crmdesk/internal/infrastructure/storage/postgres"
	"crmdesk/internal/infrastructure/storage/postgres/auth_repo"
	"crmdesk/internal/infrastructure/storage/postgres/record_repo"
	"crmdesk/pkg/logger"
	"crmdesk/pkg/numerator"
)

const (
	demoEmail    = "demo@crmdesk.local"
	demoPassword = "demo-password"
	demoName     = "Demo User"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Default().Fatalw("failed to load config", "error", err)
	}

	log := logger.Default()

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatalw("seed failed", "error", err)
	}
	log.Infow("seed complete", "email", demoEmail, "password", demoPassword)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DB.URL))
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := applyMigrations(ctx, pool, "migrations"); err != nil {
		return err
	}

	txManager := postgres.NewTxManager(pool)
	userRepo := auth_repo.NewUserRepo(txManager)
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(cfg.Auth.JWTSecret))
	authService := auth.NewService(userRepo, txManager, jwtService, auth.DefaultServiceConfig())

	user, err := authService.Register(ctx, auth.RegisterRequest{
		Email:    demoEmail,
		Password: demoPassword,
		Name:     demoName,
	})
	if err != nil {
		// Re-running the seed is fine, reuse the existing demo user.
		existing, lookupErr := userRepo.GetByEmail(ctx, demoEmail)
		if lookupErr != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}
		user = existing
		log.Infow("demo user already exists, reusing", "email", demoEmail)
	}

	ctx = session.WithUser(ctx, &session.Session{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
	})

	return seedRecords(ctx, txManager, log)
}

func applyMigrations(ctx context.Context, pool *postgres.Pool, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
		logger.Info(ctx, "applied migration", "file", name)
	}
	return nil
}

func seedRecords(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	clientSvc := client.NewService(record_repo.NewClientRepo(txManager), txManager)
	projectSvc := project.NewService(record_repo.NewProjectRepo(txManager), txManager)
	taskSvc := task.NewService(record_repo.NewTaskRepo(txManager), txManager)
	meetingSvc := meeting.NewService(record_repo.NewMeetingRepo(txManager), txManager)
	invoiceSvc := invoice.NewService(record_repo.NewInvoiceRepo(txManager), txManager,
		numerator.New(txManager.GetQuerier(ctx)))
	teammateSvc := teammate.NewService(record_repo.NewTeammateRepo(txManager), txManager)
	leadSvc := lead.NewService(record_repo.NewLeadRepo(txManager), txManager)
	paymentSvc := payment.NewService(record_repo.NewPaymentRepo(txManager), txManager)

	acme := client.NewClient("Acme Corp", "billing@acme.example")
	acme.Company = strPtr("Acme Corp")
	acme.Phone = strPtr("+1 555 0100")
	if err := clientSvc.Create(ctx, acme); err != nil {
		return err
	}

	globex := client.NewClient("Globex", "accounts@globex.example")
	globex.Company = strPtr("Globex International")
	if err := clientSvc.Create(ctx, globex); err != nil {
		return err
	}

	site := project.NewProject("Website relaunch")
	site.ClientID = &acme.ID
	site.Budget = decimal.NewFromInt(25000)
	site.StartDate = timePtr(time.Now().AddDate(0, -1, 0))
	if err := projectSvc.Create(ctx, site); err != nil {
		return err
	}

	design := task.NewTask("Prepare design mockups")
	design.ProjectID = &site.ID
	design.Priority = task.PriorityHigh
	design.DueDate = timePtr(time.Now().AddDate(0, 0, 7))
	if err := taskSvc.Create(ctx, design); err != nil {
		return err
	}

	review := task.NewTask("Review contract draft")
	review.DueDate = timePtr(time.Now().AddDate(0, 0, 3))
	if err := taskSvc.Create(ctx, review); err != nil {
		return err
	}

	kickoff := meeting.NewMeeting("Project kickoff", time.Now().AddDate(0, 0, 2))
	kickoff.ClientID = &acme.ID
	kickoff.Location = strPtr("Office, room 3")
	if err := meetingSvc.Create(ctx, kickoff); err != nil {
		return err
	}

	inv := invoice.NewInvoice(acme.ID, decimal.NewFromInt(5000))
	inv.ProjectID = &site.ID
	inv.Status = invoice.StatusSent
	inv.DueDate = timePtr(time.Now().AddDate(0, 1, 0))
	if err := invoiceSvc.Create(ctx, inv); err != nil {
		return err
	}

	dev := teammate.NewTeammate("Sam Rivera", "sam@crmdesk.local")
	dev.Role = strPtr("developer")
	if err := teammateSvc.Create(ctx, dev); err != nil {
		return err
	}

	prospect := lead.NewLead("Initech", "info@initech.example", "referral")
	prospect.Value = decimal.NewFromInt(12000)
	if err := leadSvc.Create(ctx, prospect); err != nil {
		return err
	}

	pay := payment.NewPayment(decimal.NewFromInt(2500), payment.MethodTransfer)
	pay.InvoiceID = &inv.ID
	pay.ClientID = &acme.ID
	pay.Status = payment.StatusCompleted
	pay.PaidAt = timePtr(time.Now())
	if err := paymentSvc.Create(ctx, pay); err != nil {
		return err
	}

	log.Infow("sample records created",
		"clients", 2, "projects", 1, "tasks", 2, "meetings", 1,
		"invoices", 1, "teams", 1, "leads", 1, "payments", 1,
	)
	return nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
