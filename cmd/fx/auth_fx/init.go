package auth_fx

import (
	"go.uber.org/fx"

	"github.com/Jonkomane982/student-feedback-app/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAuthController,
)
