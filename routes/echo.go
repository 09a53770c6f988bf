package routes

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// echo registers 404 handlers under this pseudo method
const echoNotFoundMethod = "echo_route_not_found"

type echoProvider struct {
	e *echo.Echo
}

// Echo lists the routes registered on an echo instance. Echo keeps no
// reference to the handler function, so the route Name is used as the
// handler: `e.GET(...).Name = "@fileHint: docs/users.go::list;"`.
func Echo(e *echo.Echo) Provider {
	return echoProvider{e: e}
}

func (p echoProvider) Routes() ([]Route, error) {
	var out []Route
	for _, r := range p.e.Routes() {
		if r.Method == echoNotFoundMethod {
			continue
		}
		out = append(out, Route{
			Paths:   []string{ToSwaggerPath(r.Path)},
			Method:  strings.ToLower(r.Method),
			Handler: r.Name,
		})
	}
	sortRoutes(out)
	return out, nil
}
