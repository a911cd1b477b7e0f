// @title         reposcout API
// @version       1.0.0
// @description   GitHub repository discovery with README enrichment

package main

import (
	"context"

	"reposcout/internal/platform/config"
	"reposcout/internal/platform/logger"
	phttp "reposcout/internal/platform/net/http"

	"reposcout/internal/services/api"
)

func main() {
	root := config.New()

	// bring up logging early
	l := logger.Get()

	// http server (reads API_PORT, default :5088)
	srv := phttp.NewServer(root)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			EnableSwagger:  root.MayBool("SWAGGER", true),
			EnableProfiler: root.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
