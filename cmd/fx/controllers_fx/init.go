package controllers_fx

import (
	"go.uber.org/fx"
	"planventure/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewHealthController))
