// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// suite holds the resources shared by every scenario.
type suite struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	timeMock *mock.Time
}

var shared *suite

// InitializeTestSuite starts the API once, backed by in-memory SQLite and miniredis.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		env := map[string]string{
			"ENV":                        "test",
			"DATABASE_DRIVER":            config.DriverSQLite,
			"WALLET_LOCK_BACKEND":        config.LockBackendRedis,
			"WALLET_LOCK_WAIT":           "2s",
			"JWT_SECRET":                 testJWTSecret,
			"SCHEDULER_ENABLED":          "false",
			"SCHEDULER_MANUAL_RUN_LIMIT": "1000",
		}
		for key, value := range env {
			_ = os.Setenv(key, value)
		}

		cfg, err := config.Load()
		if err != nil {
			panic(err)
		}

		db := mock.NewDb(model.AllModels()...)
		timeMock := mock.NewTime()

		injector, err := dependency.NewInjector(cfg, db.DbConn,
			dependency.WithClock(timeMock),
			dependency.WithRedisClient(mock.NewRedis().Client),
			dependency.WithHealthCheck("database", func(ctx context.Context) error {
				return db.Ping()
			}),
		)
		if err != nil {
			panic(err)
		}

		shared = &suite{
			server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
			injector: injector,
			db:       db,
			timeMock: timeMock,
		}
	})

	ctx.AfterSuite(func() {
		if shared != nil {
			shared.server.Close()
			_ = shared.injector.Close()
		}
	})
}

// testContext holds the state of one scenario.
type testContext struct {
	uri         string
	client      *http.Client
	headers     map[string]string
	accessToken string
	response    *response
	saved       map[string]string
	db          *mock.Db
	timeMock    *mock.Time
	injector    *dependency.Injector
}

type response struct {
	status int
	body   any
}

func newTestContext() *testContext {
	return &testContext{
		uri:      shared.server.URL,
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       shared.db,
		timeMock: shared.timeMock,
		injector: shared.injector,
	}
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.saved = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.timeMock.Reset()

	mock.NewRedis().Clear()
	return t.db.ClearDB()
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := newTestContext()

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^I am authenticated with an expired token$`, test.iAmAuthenticatedWithAnExpiredToken)

	// Fixture steps
	ctx.Given(`^a wallet "([^"]*)" exists with balance "([^"]*)"$`, test.aWalletExistsWithBalance)
	ctx.Given(`^a category "([^"]*)" of type "([^"]*)" exists$`, test.aCategoryOfTypeExists)
	ctx.Given(`^a credit card "([^"]*)" exists with max debt "([^"]*)" closing on day (\d+) and due on day (\d+)$`, test.aCreditCardExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Lock assertion steps
	ctx.Then(`^no wallet locks should be held$`, test.noWalletLocksShouldBeHeld)
}
