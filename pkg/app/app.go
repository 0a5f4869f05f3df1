package app

import (
	"log/slog"

	"github.com/fortizbank/fortiz/pkg/cache"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/fortizbank/fortiz/pkg/service/admin"
	"github.com/fortizbank/fortiz/pkg/service/auth"
	"github.com/fortizbank/fortiz/pkg/service/dashboard"
	"github.com/fortizbank/fortiz/pkg/service/kyc"
	"github.com/fortizbank/fortiz/pkg/service/notification"
	"github.com/fortizbank/fortiz/pkg/service/transfer"
	"github.com/fortizbank/fortiz/pkg/service/user"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Cache    cache.Cache
	Sender   notification.Sender
	Logger   *slog.Logger
}

type App struct {
	Deps                *Deps
	Config              *config.App
	AuthService         *auth.Service
	UserService         *user.Service
	DashboardService    *dashboard.Service
	TransferService     *transfer.Service
	KycService          *kyc.Service
	AdminService        *admin.Service
	NotificationService *notification.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.DashboardService = dashboard.New(deps.Uow, deps.Cache, cfg.Dashboard.CacheTTL, deps.Logger)
	app.TransferService = transfer.New(deps.Uow, deps.EventBus, app.DashboardService, cfg.Transfer, deps.Logger)
	app.KycService = kyc.New(deps.Uow, deps.Logger)
	app.AdminService = admin.New(deps.Uow, deps.EventBus, deps.Logger)
	app.NotificationService = notification.New(deps.Uow, deps.Sender, deps.Logger)
	app.setupEventBus()
	return app
}
