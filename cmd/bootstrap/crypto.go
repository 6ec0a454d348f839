package bootstrap

import (
	"invopay/internal/pkg/bankcrypt"
	"invopay/internal/pkg/config"

	"go.uber.org/fx"
)

var CryptoModule = fx.Module("crypto",
	fx.Provide(
		NewBankDetailCipher,
	),
)

func NewBankDetailCipher(cfg config.Config) (*bankcrypt.Cipher, error) {
	return bankcrypt.NewCipher(cfg.Webhook.BankDetailKey)
}
