package app

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jamadeu/multicontas/pkg/config"
	accountsvc "github.com/jamadeu/multicontas/pkg/service/account"
	clientsvc "github.com/jamadeu/multicontas/pkg/service/client"
	"github.com/jamadeu/multicontas/webapi/account"
	"github.com/jamadeu/multicontas/webapi/client"
	"github.com/jamadeu/multicontas/webapi/common"
)

// New builds the services and returns the wired Fiber app.
func New(deps config.Deps) *fiber.App {
	clientSvc := clientsvc.NewService(deps.ClientRepo, deps.Logger)
	accountSvc := accountsvc.NewService(deps.AccountRepo, deps.Logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Framework errors (unknown route, 405) carry their own code.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, err, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Use X-Forwarded-For header if available (for load balancers/proxies)
			// Fall back to X-Real-IP, then to direct IP
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", errors.New("rate limit exceeded"), fiber.StatusTooManyRequests)
		},
	}))
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	client.Routes(app, clientSvc)
	account.Routes(app, accountSvc)
	return app
}
