package bootstrap

import (
	"football-field-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.WithLogger(NewFxEventLogger),
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
