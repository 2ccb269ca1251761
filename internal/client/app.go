package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/workers"
	"github.com/MKhiriev/go-study-sync/models"
)

var ErrNilDependency = errors.New("client app dependency is nil")

// console is the interactive front end; [tui.TUI] in production.
type console interface {
	Run(ctx context.Context) error
}

type App struct {
	app     config.ClientApp
	token   string
	syncSvc service.ClientSyncService
	devices service.ClientDeviceService
	workers *workers.Workers
	ui      console

	logger *logger.Logger
}

// NewApp wires the client runtime. The background sync job is started when
// the console opens and stopped when it closes.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, ui console, logger *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || ui == nil {
		return nil, ErrNilDependency
	}

	return &App{
		app:     cfg.App,
		token:   cfg.Adapter.Token,
		syncSvc: services.SyncService,
		devices: services.DeviceService,
		workers: workers.NewWorkers(services.SyncJob),
		ui:      ui,
		logger:  logger,
	}, nil
}

// Run implements [Client]. It registers the device when none is stored yet,
// runs the app-open sync, then hands the terminal to the console until the
// user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.checkTokenOwner()
	a.ensureDevice(ctx)

	result := a.syncSvc.Sync(ctx, a.app.UserID, models.TriggerAppOpen)
	a.logger.Info().Stringer("result", result).Msg("app open sync")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	return nil
}

// ensureDevice registers this device once. Failures are logged only: an
// unregistered device still syncs.
func (a *App) ensureDevice(ctx context.Context) {
	status, err := a.syncSvc.Status(ctx, a.app.UserID)
	if err != nil {
		a.logger.Err(err).Msg("read sync status")
		return
	}
	if status.HasDevice() {
		return
	}

	info := models.DeviceInfo{
		Name:       a.app.DeviceName,
		Platform:   a.app.Platform,
		AppVersion: a.app.Version,
	}

	deviceID, err := a.devices.RegisterDevice(ctx, a.app.UserID, info)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			a.logger.Info().Msg("offline mode, device registration skipped")
			return
		}
		a.logger.Warn().Err(err).Msg("device registration failed")
		return
	}

	a.logger.Debug().Str("device_id", deviceID).Msg("device registered on start")
}

// checkTokenOwner warns when the configured token was issued for another
// user; the backend would reject every request with 403.
func (a *App) checkTokenOwner() {
	if a.token == "" {
		return
	}

	owner, err := utils.ParseUserIDFromJWT(a.token)
	if err != nil {
		a.logger.Warn().Err(err).Msg("cannot read user id from token")
		return
	}
	if owner != a.app.UserID {
		a.logger.Warn().
			Int64("token_user_id", owner).
			Int64("user_id", a.app.UserID).
			Msg("token belongs to another user")
	}
}
