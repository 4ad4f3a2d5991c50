package cmd

import (
	"log/slog"

	"parcelflow/internal/adapters/in/http"
	"parcelflow/internal/adapters/out/postgres"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) demandUoWFactory() commands.DemandUoWFactory {
	return FuncDemandUoWFactory(func() commands.DemandUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) missionStateUoWFactory() commands.MissionStateUoWFactory {
	return FuncMissionStateUoWFactory(func() commands.MissionStateUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) missionUoWFactory() commands.MissionUoWFactory {
	return FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateOverrideParcelStatusCommandHandler() commands.OverrideParcelStatusCommandHandler {
	return commands.NewOverrideParcelStatusCommandHandler(c.parcelUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateDemandCommandHandler() commands.CreateDemandCommandHandler {
	return commands.NewCreateDemandCommandHandler(c.demandUoWFactory())
}

func (c *CompositionRoot) CreateReviewDemandCommandHandler() commands.ReviewDemandCommandHandler {
	return commands.NewReviewDemandCommandHandler(c.demandUoWFactory())
}

func (c *CompositionRoot) CreateCreateMissionCommandHandler() commands.CreateMissionCommandHandler {
	return commands.NewCreateMissionCommandHandler(c.missionUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptMissionCommandHandler() commands.AcceptMissionCommandHandler {
	return commands.NewAcceptMissionCommandHandler(c.missionStateUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectMissionCommandHandler() commands.RejectMissionCommandHandler {
	return commands.NewRejectMissionCommandHandler(c.missionStateUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateStartMissionCommandHandler() commands.StartMissionCommandHandler {
	return commands.NewStartMissionCommandHandler(c.missionStateUoWFactory())
}

func (c *CompositionRoot) CreateMarkParcelOutcomeCommandHandler() commands.MarkParcelOutcomeCommandHandler {
	return commands.NewMarkParcelOutcomeCommandHandler(c.missionUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteMissionCommandHandler() commands.CompleteMissionCommandHandler {
	return commands.NewCompleteMissionCommandHandler(c.missionUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelMissionCommandHandler() commands.CancelMissionCommandHandler {
	return commands.NewCancelMissionCommandHandler(c.missionUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSendMissionRemindersCommandHandler() commands.SendMissionRemindersCommandHandler {
	return commands.NewSendMissionRemindersCommandHandler(c.missionStateUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetAssignableDemandsQueryHandler() queries.GetAssignableDemandsQueryHandler {
	return queries.NewGetAssignableDemandsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverMissionsQueryHandler() queries.GetDriverMissionsQueryHandler {
	return queries.NewGetDriverMissionsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the API server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterParcelCommandHandler(),
		c.CreateOverrideParcelStatusCommandHandler(),
		c.CreateCreateDemandCommandHandler(),
		c.CreateReviewDemandCommandHandler(),
		c.CreateCreateMissionCommandHandler(),
		c.CreateAcceptMissionCommandHandler(),
		c.CreateRejectMissionCommandHandler(),
		c.CreateStartMissionCommandHandler(),
		c.CreateMarkParcelOutcomeCommandHandler(),
		c.CreateCompleteMissionCommandHandler(),
		c.CreateCancelMissionCommandHandler(),
		c.CreateGetAssignableDemandsQueryHandler(),
		c.CreateGetParcelHistoryQueryHandler(),
		c.CreateGetDriverMissionsQueryHandler(),
	)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSendMissionRemindersCommandHandler(),
		c.config.ReminderCronSpec,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDemandUoWFactory func() commands.DemandUoW

func (f FuncDemandUoWFactory) Create() commands.DemandUoW {
	return f()
}

type FuncMissionStateUoWFactory func() commands.MissionStateUoW

func (f FuncMissionStateUoWFactory) Create() commands.MissionStateUoW {
	return f()
}

type FuncMissionUoWFactory func() commands.MissionUoW

func (f FuncMissionUoWFactory) Create() commands.MissionUoW {
	return f()
}
