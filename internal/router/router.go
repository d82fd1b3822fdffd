package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/handler"
)

// Handlers bundles every handler the route table needs.
type Handlers struct {
	Home      *handler.HomeHandler
	Auth      *handler.AuthHandler
	XSS       *handler.XSSHandler
	SQLi      *handler.SQLiHandler
	CSRF      *handler.CSRFHandler
	WeakAuth  *handler.WeakAuthHandler
	Exposure  *handler.ExposureHandler
	Cmdi      *handler.CmdiHandler
	Misconfig *handler.MisconfigHandler
	Traversal *handler.TraversalHandler
	Access    *handler.AccessHandler
	Redirect  *handler.RedirectHandler
}

// RegisterRoutes wires the full static route table. Dispatch is one
// explicit (method, path) → handler line per endpoint; there is nothing
// dynamic or reflective about it.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", handler.Health)

	e.GET("/", h.Home.Index)
	e.GET("/reset-db", h.Home.ResetDB)

	e.GET("/login", h.Auth.LoginForm)
	e.POST("/login", h.Auth.Login)
	e.GET("/logout", h.Auth.Logout)

	e.GET("/vuln/xss", h.XSS.Reflect)

	e.GET("/vuln/sqli", h.SQLi.Form)
	e.POST("/vuln/sqli", h.SQLi.Submit)

	e.GET("/vuln/csrf", h.CSRF.Form)
	e.POST("/vuln/csrf", h.CSRF.Submit)

	e.GET("/vuln/auth", h.WeakAuth.Form)
	e.POST("/vuln/auth", h.WeakAuth.Submit)

	e.GET("/vuln/exposure", h.Exposure.Exposure)
	e.GET("/api/users", h.Exposure.APIUsers)

	e.GET("/vuln/cmdi", h.Cmdi.Form)
	e.POST("/vuln/cmdi", h.Cmdi.Submit)

	e.GET("/vuln/misconfig", h.Misconfig.Misconfig)
	e.GET("/files/", h.Misconfig.FilesIndex)
	e.GET("/files/*", h.Misconfig.FilesServe)

	e.GET("/vuln/traversal", h.Traversal.Read)

	e.GET("/vuln/access", h.Access.Index)
	e.GET("/vuln/access/profile/:id", h.Access.Profile)
	e.GET("/admin", h.Access.Admin)

	e.GET("/vuln/redirect", h.Redirect.Go)
}
