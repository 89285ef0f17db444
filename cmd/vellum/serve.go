package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vellum-dev/vellum/internal/gallery"
	"github.com/vellum-dev/vellum/pkg/render"
	"github.com/vellum-dev/vellum/pkg/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over HTTP",
		Long: `Serve the built-in gallery pages, streaming each response
progressively. Dev mode adds live reload; --metrics exposes
Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			renderCfg, err := renderConfigByName(getString("render", "serve.render", "compact"))
			if err != nil {
				return err
			}

			var opts []server.Option
			if getBool("metrics", "serve.metrics") {
				opts = append(opts, server.WithMetrics())
			}
			if getBool("tracing", "serve.tracing") {
				opts = append(opts, server.WithTracing())
			}

			log := newLogger()
			srv := server.New(server.Config{
				Addr:      getString("addr", "serve.addr", ":8080"),
				Render:    renderCfg,
				ChunkSize: getInt("chunk-size", "serve.chunk-size", 0),
				Dev:       getBool("dev", "serve.dev"),
				Logger:    log,
			}, opts...)

			for _, page := range gallery.Pages() {
				page := page
				srv.Handle(page.Path, func(*http.Request) (*render.Document, error) {
					return page.Doc(), nil
				})
			}

			if getBool("metrics", "serve.metrics") {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				mux.Handle("/", srv.Handler())
				addr := getString("addr", "serve.addr", ":8080")
				log.Info("listening", "addr", addr)
				return http.ListenAndServe(addr, mux)
			}

			return srv.ListenAndServe()
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	cmd.Flags().String("render", "", "Render preset: compact|pretty|email|optimized")
	cmd.Flags().Int("chunk-size", 0, "Streaming chunk size in bytes")
	cmd.Flags().Bool("dev", false, "Enable dev mode with live reload")
	cmd.Flags().Bool("metrics", false, "Expose Prometheus metrics on /metrics")
	cmd.Flags().Bool("tracing", false, "Enable OpenTelemetry tracing")

	return cmd
}
