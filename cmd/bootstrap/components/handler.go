package components

import (
	"fullplanes/internal/handler"
	"fullplanes/internal/handler/api"
	"fullplanes/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewExportHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
