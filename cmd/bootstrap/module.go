package bootstrap

import (
	"invopay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CryptoModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
