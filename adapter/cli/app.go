package cli

import (
	"github.com/felixgeelhaar/nucleus/internal/app"
)

// appInstance holds the container for command handlers.
var appInstance *app.Container

// SetApp installs the application container.
func SetApp(a *app.Container) {
	appInstance = a
}

// GetApp returns the application container, or nil when not initialized.
func GetApp() *app.Container {
	return appInstance
}
