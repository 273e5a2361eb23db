package main

import (
	"database/sql"
	"log/slog"

	"github.com/mrglxor/contact-api/internal/config"
	"github.com/mrglxor/contact-api/internal/platform/postgres"
	"github.com/mrglxor/contact-api/internal/service"
	"github.com/mrglxor/contact-api/internal/service/auth"
	"github.com/mrglxor/contact-api/internal/store"
)

// application holds the process-wide dependencies: configuration, the
// logger, the database pool, and the wired stores and services.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

// newApplication wires the stores and services around the given database
// connection. The connection pool is constructed once at startup and
// shared by reference; no other cross-request state exists.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewPostgresUserStore(db, logger)
	contactStore := postgres.NewPostgresContactStore(db, logger)
	addressStore := postgres.NewPostgresAddressStore(db, logger)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewUUIDTokenGenerator()

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		userStore:    userStore,
		contactStore: contactStore,
		addressStore: addressStore,

		userService:    service.NewUserService(userStore, hasher, hasher, tokens, logger),
		contactService: service.NewContactService(contactStore, logger),
		addressService: service.NewAddressService(addressStore, contactStore, logger),
	}
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
