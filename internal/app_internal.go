package internal

import (
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	"github.com/rios0rios0/ferrypick/internal/infrastructure/controllers"
)

// AppInternal holds the wired controllers of the application.
type AppInternal struct {
	pickController *controllers.PickController
	controllers    []entities.Controller
}

// NewAppInternal creates the AppInternal from the DIG-provided controllers.
func NewAppInternal(
	pickController *controllers.PickController,
	subControllers *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		pickController: pickController,
		controllers:    *subControllers,
	}
}

// GetPickController returns the controller bound to the root command.
func (it *AppInternal) GetPickController() *controllers.PickController {
	return it.pickController
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
