package components

import (
	"session-booking/internal/pkg/clock"
	"session-booking/internal/usecase/commands"
	"session-booking/internal/usecase/queries"
	"session-booking/internal/usecase/schedule"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	schedule.NewService,
	func(s *schedule.Service) commands.SlotChecker { return s },
	func(s *schedule.Service) queries.SlotFinder { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFlowUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewSessionQueries,
	),
)
