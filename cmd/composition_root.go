package cmd

import (
	"log/slog"

	"disbursement/internal/adapters/out/partner"
	"disbursement/internal/adapters/out/postgres"
	"disbursement/internal/core/application/usecases/commands"
	"disbursement/internal/core/application/usecases/queries"
	"disbursement/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PartnerGateway
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    partner.NewClient(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRegisterProviderCommandHandler() commands.RegisterProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProviderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLoadOrderCommandHandler() commands.CreateLoadOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateDisburseOrderCommandHandler() commands.DisburseOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDisburseOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProvidersQueryHandler() queries.GetAllProvidersQueryHandler {
	return queries.NewGetAllProvidersQueryHandler(c.gormDB)
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
