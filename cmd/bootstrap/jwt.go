package bootstrap

import (
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/pkg/clock"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		clock.NewRealClock,
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration, clk)
}
