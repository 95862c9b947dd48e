package controllers_fx

import (
	"go.uber.org/fx"
	"jelajah/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDistrictController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPlanController))
