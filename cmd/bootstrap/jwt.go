package bootstrap

import (
	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/jwt"
	"session-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			NewFlowSigner,
			fx.As(new(flow.TokenSigner)),
		),
		fx.Annotate(
			flow.NewCodec,
			fx.As(new(commands.FlowCodec)),
		),
	),
)

// NewJWTService issues and checks the access tokens presented by front-end services.
func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	key, err := jwt.DeriveKey(cfg.JWT.Secret, jwt.AccessTokenKeyLabel)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(key, cfg.JWT.Duration, cfg.JWT.Issuer, clk), nil
}

// NewFlowSigner uses a key of its own so an access token never verifies as a flow token.
func NewFlowSigner(cfg config.Config, clk clock.Clock) (*jwt.Signer, error) {
	key, err := jwt.DeriveKey(cfg.JWT.Secret, jwt.FlowTokenKeyLabel)
	if err != nil {
		return nil, err
	}
	return jwt.NewSigner(key, cfg.JWT.Issuer, clk), nil
}
