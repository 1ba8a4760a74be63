package container

import (
	"macshift/internal/application/usecases"
	"macshift/internal/domain/interfaces"
	"macshift/internal/domain/services"
	"macshift/internal/infrastructure/adapters"
	"macshift/internal/infrastructure/config"
	"macshift/internal/infrastructure/network"
	"macshift/internal/infrastructure/ui"

	"github.com/sirupsen/logrus"
)

// Container wires the application's dependencies.
type Container struct {
	config  *config.Config
	logger  *logrus.Logger
	printer *ui.Printer

	// infrastructure adapters
	commandExecutor  interfaces.CommandExecutor
	clock            interfaces.Clock
	privilegeChecker interfaces.PrivilegeChecker

	// services
	macGenerator *services.MacGeneratorService

	// network adapter, serving both reader and mutator ports
	ifconfigAdapter *network.IfconfigAdapter

	// use cases
	changeMACUseCase *usecases.ChangeMACUseCase
}

// NewContainer creates a new Container
func NewContainer(cfg *config.Config, logger *logrus.Logger, printer *ui.Printer) *Container {
	c := &Container{
		config:  cfg,
		logger:  logger,
		printer: printer,
	}

	c.initializeInfrastructure()
	c.initializeServices()
	c.initializeUseCases()

	return c
}

// initializeInfrastructure initializes the infrastructure components
func (c *Container) initializeInfrastructure() {
	c.commandExecutor = adapters.NewRealCommandExecutor()
	c.clock = adapters.NewRealClock()
	c.privilegeChecker = adapters.NewRealPrivilegeChecker()

	c.ifconfigAdapter = network.NewIfconfigAdapter(
		c.commandExecutor,
		c.printer,
		c.config.Tool.Path,
		c.config.Tool.CommandTimeout,
		c.logger,
	)
}

// initializeServices initializes the domain services
func (c *Container) initializeServices() {
	c.macGenerator = services.NewMacGeneratorService()
}

// initializeUseCases initializes the use cases
func (c *Container) initializeUseCases() {
	c.changeMACUseCase = usecases.NewChangeMACUseCase(
		c.ifconfigAdapter,
		c.ifconfigAdapter,
		c.macGenerator,
		c.clock,
		c.printer,
		c.logger,
	)
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetPrivilegeChecker returns the privilege checker
func (c *Container) GetPrivilegeChecker() interfaces.PrivilegeChecker {
	return c.privilegeChecker
}

// GetChangeMACUseCase returns the change-MAC use case
func (c *Container) GetChangeMACUseCase() *usecases.ChangeMACUseCase {
	return c.changeMACUseCase
}
