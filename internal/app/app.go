package app

import (
	"context"
	"log/slog"
	"time"

	httpapp "github.com/openquorum/ballot-service/internal/app/http"
	"github.com/openquorum/ballot-service/internal/config"
	"github.com/openquorum/ballot-service/internal/handlers"
	"github.com/openquorum/ballot-service/internal/middleware"
	"github.com/openquorum/ballot-service/internal/notify"
	"github.com/openquorum/ballot-service/internal/repo/postgres"
	"github.com/openquorum/ballot-service/internal/services"
)

type App struct {
	HTTPServer *httpapp.App
	Ballots    *services.Ballots
	Ledger     *services.VoteLedger
	Cron       *services.BallotCron

	log      *slog.Logger
	cfg      *config.Config
	storage  *postgres.Storage
	stopCron context.CancelFunc
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	email := notify.NewResend(log, cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.AppURL)

	ballots := services.NewBallots(log, storage, storage, storage, email, cfg.FreezeEligibilityAtOpen)
	ledger := services.NewVoteLedger(log, storage, storage, storage)
	cron := services.NewBallotCron(log, storage, storage, storage, email)
	notifications := services.NewNotifications(log, storage)

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret)

	ballotHandler := handlers.NewBallotHandler(ballots, ledger)
	notificationHandler := handlers.NewNotificationHandler(notifications)
	cronHandler := handlers.NewCronHandler(cron, cfg.Cron)

	httpApp := httpapp.NewApp(log, cfg.HTTP.Port, ballotHandler, notificationHandler, cronHandler, authMiddleware.Middleware())

	return &App{
		HTTPServer: httpApp,
		Ballots:    ballots,
		Ledger:     ledger,
		Cron:       cron,
		log:        log,
		cfg:        cfg,
		storage:    storage,
	}
}

// StartCron launches the in-process scheduler trigger when an interval is
// configured. Deployments that drive ticks through the HTTP endpoint leave
// the interval at zero.
func (a *App) StartCron() {
	if a.cfg.Cron.Interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.stopCron = cancel

	go func() {
		ticker := time.NewTicker(a.cfg.Cron.Interval)
		defer ticker.Stop()

		a.log.Info("ballot cron started", slog.Duration("interval", a.cfg.Cron.Interval))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				result := a.Cron.Tick(ctx, services.CronConfig{
					OpenReminderMinutes:  a.cfg.Cron.OpenReminderMinutes,
					CloseReminderMinutes: a.cfg.Cron.CloseReminderMinutes,
					BatchSize:            a.cfg.Cron.BatchSize,
					MaxIterations:        a.cfg.Cron.MaxIterations,
					DryRun:               a.cfg.Cron.DryRun,
				})
				a.log.Debug("ballot cron tick finished",
					slog.Int("opened", len(result.Opened)),
					slog.Int("closed", len(result.Closed)),
					slog.Int("skipped", result.Skipped),
					slog.Int("errors", result.Errors),
				)
			}
		}
	}()
}

func (a *App) Stop(ctx context.Context) error {
	if a.stopCron != nil {
		a.stopCron()
	}
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.storage.Close()
}
