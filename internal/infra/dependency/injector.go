// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	creditcard "github.com/finance-tracker/ledger/internal/application/usecase/credit_card"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/application/usecase/wallet"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/lock"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	Worker       *recurring.Worker
	TokenService adapter.TokenService

	redisClient *redis.Client
	ownsRedis   bool
}

type options struct {
	clock        adapter.Clock
	redisClient  *redis.Client
	healthChecks map[string]controller.HealthCheck
}

// Option customizes the injector.
type Option func(*options)

// WithClock replaces the system clock.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRedisClient supplies the client used by the redis lock backend.
// The injector does not close clients passed this way.
func WithRedisClient(client *redis.Client) Option {
	return func(o *options) {
		o.redisClient = client
	}
}

// WithHealthCheck registers a dependency probe served by GET /health.
func WithHealthCheck(name string, check controller.HealthCheck) Option {
	return func(o *options) {
		o.healthChecks[name] = check
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts ...Option) (*Injector, error) {
	o := &options{
		clock:        adapters.NewSystemClock(),
		healthChecks: map[string]controller.HealthCheck{},
	}
	for _, opt := range opts {
		opt(o)
	}

	injector := &Injector{
		Config: cfg,
		DB:     db,
	}

	// Create repositories
	walletRepo := persistence.NewWalletRepository(db)
	entryRepo := persistence.NewLedgerEntryRepository(db)
	transferRepo := persistence.NewTransferRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	debtRepo := persistence.NewCreditCardDebtRepository(db)
	paymentRepo := persistence.NewCreditCardPaymentRepository(db)
	templateRepo := persistence.NewRecurringTemplateRepository(db)
	transactor := persistence.NewTransactor(db)

	// Create adapters/services
	locker, err := injector.newLocker(cfg, o)
	if err != nil {
		return nil, err
	}
	clock := o.clock
	injector.TokenService = adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Create wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
	getWalletUseCase := wallet.NewGetWalletUseCase(walletRepo)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(locker, walletRepo)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(transactor, locker, walletRepo, entryRepo, transferRepo)

	// Create category use cases
	categoryUseCases := controller.CategoryUseCases{
		List:   category.NewListCategoriesUseCase(categoryRepo),
		Create: category.NewCreateCategoryUseCase(categoryRepo),
		Update: category.NewUpdateCategoryUseCase(categoryRepo),
		Delete: category.NewDeleteCategoryUseCase(transactor, categoryRepo),
	}

	// Create ledger use cases
	addEntryUseCase := ledger.NewAddEntryUseCase(transactor, locker, walletRepo, entryRepo, categoryRepo)
	getEntryUseCase := ledger.NewGetEntryUseCase(entryRepo)
	listEntriesUseCase := ledger.NewListEntriesUseCase(entryRepo)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(transactor, locker, walletRepo, entryRepo, categoryRepo)
	confirmEntryUseCase := ledger.NewConfirmEntryUseCase(transactor, locker, walletRepo, entryRepo)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(transactor, locker, walletRepo, entryRepo)
	transferMoneyUseCase := ledger.NewTransferMoneyUseCase(transactor, locker, walletRepo, transferRepo)
	listTransfersUseCase := ledger.NewListTransfersUseCase(walletRepo, transferRepo)

	// Create credit card use cases
	settlePaymentUseCase := creditcard.NewSettlePaymentUseCase(transactor, locker, walletRepo, cardRepo, debtRepo, paymentRepo, addEntryUseCase, clock)
	creditCardUseCases := controller.CreditCardUseCases{
		Create:          creditcard.NewCreateCreditCardUseCase(cardRepo),
		List:            creditcard.NewListCreditCardsUseCase(cardRepo),
		Update:          creditcard.NewUpdateCreditCardUseCase(cardRepo, paymentRepo),
		Delete:          creditcard.NewDeleteCreditCardUseCase(cardRepo, debtRepo),
		AvailableCredit: creditcard.NewGetAvailableCreditUseCase(cardRepo, debtRepo, paymentRepo),
		NextInvoiceDate: creditcard.NewGetNextInvoiceDateUseCase(cardRepo, paymentRepo, clock),
		Invoice:         creditcard.NewGetInvoiceUseCase(cardRepo, paymentRepo, clock),
		PayInvoice:      creditcard.NewPayInvoiceUseCase(locker, walletRepo, cardRepo, paymentRepo, settlePaymentUseCase),
		RegisterDebt:    creditcard.NewRegisterDebtUseCase(transactor, locker, cardRepo, debtRepo, paymentRepo, categoryRepo, cfg.Ledger.MaxInstallments),
		ListDebts:       creditcard.NewListDebtsUseCase(cardRepo, debtRepo),
		DeleteDebt:      creditcard.NewDeleteDebtUseCase(transactor, locker, debtRepo, paymentRepo),
		SettlePayment:   settlePaymentUseCase,
	}

	// Create recurring use cases
	processDueTemplatesUseCase := recurring.NewProcessDueTemplatesUseCase(transactor, locker, templateRepo, entryRepo, addEntryUseCase)
	recurringUseCases := controller.RecurringUseCases{
		Create:         recurring.NewCreateTemplateUseCase(templateRepo, walletRepo, categoryRepo, clock, cfg.Ledger.RecurringDefaultEndDate),
		List:           recurring.NewListTemplatesUseCase(templateRepo),
		Update:         recurring.NewUpdateTemplateUseCase(locker, templateRepo, walletRepo, categoryRepo),
		Delete:         recurring.NewDeleteTemplateUseCase(locker, templateRepo),
		Process:        processDueTemplatesUseCase,
		LastOccurrence: recurring.NewComputeLastOccurrenceDateUseCase(clock),
		Projection:     recurring.NewProjectOccurrencesUseCase(templateRepo),
	}
	injector.Worker = recurring.NewWorker(processDueTemplatesUseCase, clock, cfg.Scheduler.Spec, cfg.Scheduler.Timeout)

	// Create controllers
	healthController := controller.NewHealthController(clock, o.healthChecks)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		getWalletUseCase,
		listWalletsUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
		listTransfersUseCase,
	)

	categoryController := controller.NewCategoryController(categoryUseCases)

	entryController := controller.NewEntryController(
		addEntryUseCase,
		getEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		confirmEntryUseCase,
		deleteEntryUseCase,
		transferMoneyUseCase,
	)

	creditCardController := controller.NewCreditCardController(creditCardUseCases)
	recurringController := controller.NewRecurringController(recurringUseCases, clock)

	// Create middleware
	var windowCounter middleware.WindowCounter = middleware.NewMemoryWindowCounter()
	if injector.redisClient != nil {
		windowCounter = middleware.NewRedisWindowCounter(injector.redisClient)
	}
	processRateLimiter := middleware.NewRateLimiter(windowCounter, cfg.Scheduler.ManualRunLimit, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(injector.TokenService)

	// Create router
	injector.Router = router.NewRouter(
		healthController,
		walletController,
		categoryController,
		entryController,
		creditCardController,
		recurringController,
		processRateLimiter,
		authMiddleware,
	)

	return injector, nil
}

// newLocker builds the wallet locker selected by cfg.Lock.Backend.
func (i *Injector) newLocker(cfg *config.Config, o *options) (adapter.WalletLocker, error) {
	if cfg.Lock.Backend != config.LockBackendRedis {
		slog.Info("Using in-process wallet locks")
		return lock.NewLocalLocker(), nil
	}

	client := o.redisClient
	if client == nil {
		redisOptions, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		if cfg.Redis.Password != "" {
			redisOptions.Password = cfg.Redis.Password
		}
		if cfg.Redis.DB != 0 {
			redisOptions.DB = cfg.Redis.DB
		}
		client = redis.NewClient(redisOptions)
		i.ownsRedis = true
	}
	i.redisClient = client

	o.healthChecks["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}

	slog.Info("Using Redis wallet locks", "ttl", cfg.Lock.TTL, "wait", cfg.Lock.Wait)
	return lock.NewRedisLocker(client, cfg.Lock.TTL, cfg.Lock.Wait), nil
}

// Close releases connections opened by the injector.
func (i *Injector) Close() error {
	if i.redisClient != nil && i.ownsRedis {
		if err := i.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}
