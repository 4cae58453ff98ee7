package components

import (
	"session-booking/internal/infra/db"
	"session-booking/internal/infra/notify"
	"session-booking/internal/infra/readstore"
	"session-booking/internal/infra/repository"
	"session-booking/internal/infra/uow"
	"session-booking/internal/usecase/queries"
	"session-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Availability rule
		fx.Annotate(
			repository.NewRuleRepository,
			fx.As(new(shared.RuleStore)),
		),
		// Session types
		repository.NewSessionTypeRepository,
		func(r *repository.SessionTypeRepository) shared.SessionTypeStore { return r },
		func(r *repository.SessionTypeRepository) queries.SessionTypeLookup { return r },
		// Sessions and invites
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingStore)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyStore)),
		),
		// Notification outbox
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
		fx.Annotate(
			notify.NewOutboxNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
