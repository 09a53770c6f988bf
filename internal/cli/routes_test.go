package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolah/swagscrape/internal/config"
	"github.com/kolah/swagscrape/routes"
	"github.com/stretchr/testify/require"
)

func TestRouteProviderMerge(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "routes.yaml")
	content := "GET:\n  /x: upper\n  /y: file\nget:\n  /x: lower\n"
	require.NoError(t, os.WriteFile(manifest, []byte(content), 0644))

	cfg := &config.Config{
		RoutesFile: manifest,
		Routes: []config.RouteConfig{
			{Method: "GET", Path: "/y", Handler: "inline"},
			{Method: "delete", Path: "/y", Handler: "remove"},
		},
	}

	for range 20 {
		provider, err := routeProvider(cfg)
		require.NoError(t, err)
		rs, err := provider.Routes()
		require.NoError(t, err)
		require.Equal(t, []routes.Route{
			{Paths: []string{"/y"}, Method: "delete", Handler: "remove"},
			{Paths: []string{"/x"}, Method: "get", Handler: "lower"},
			{Paths: []string{"/y"}, Method: "get", Handler: "inline"},
		}, rs)
	}
}
