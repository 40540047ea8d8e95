package internal

import (
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the CLI is built from.
type AppInternal struct {
	root        *controllers.ReleaseController
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(
	root *controllers.ReleaseController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.ReleaseController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
