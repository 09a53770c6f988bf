package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type chiProvider struct {
	router chi.Routes
}

// Chi lists every method and pattern registered on a chi router, including
// mounted sub-routers.
func Chi(r chi.Routes) Provider {
	return chiProvider{router: r}
}

func (p chiProvider) Routes() ([]Route, error) {
	var out []Route
	err := chi.Walk(p.router, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		for {
			chain, ok := handler.(*chi.ChainHandler)
			if !ok {
				break
			}
			handler = chain.Endpoint
		}
		out = append(out, Route{
			Paths:   []string{ToSwaggerPath(route)},
			Method:  strings.ToLower(method),
			Handler: handler,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking chi routes: %w", err)
	}

	sortRoutes(out)
	return out, nil
}
