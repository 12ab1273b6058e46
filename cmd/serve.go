package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/model"
	"github.com/sells-group/reviewlead-cli/internal/pipeline"
)

var (
	servePort int
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the latest run's leads and digest over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dir := serveDir
		if dir == "" {
			dir = cfg.Output.Dir
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(dir),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("serving leads", zap.Int("port", port), zap.String("dir", dir))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return eris.Wrap(err, "serve")
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "serve shutdown")
		}
		return nil
	},
}

// newRouter builds the read-only API over a run's artifact directory.
// Artifacts are re-read per request so a new run shows up without a
// restart.
func newRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/leads", func(w http.ResponseWriter, req *http.Request) {
		leads, err := readLeads(dir)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no scored run available"})
			return
		}
		writeJSON(w, http.StatusOK, leads)
	})

	r.Get("/api/leads/{id}", func(w http.ResponseWriter, req *http.Request) {
		leads, err := readLeads(dir)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no scored run available"})
			return
		}
		id := chi.URLParam(req, "id")
		for _, l := range leads {
			if l.Enriched.Business.ID == id {
				writeJSON(w, http.StatusOK, l)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
	})

	r.Get("/api/digest", func(w http.ResponseWriter, req *http.Request) {
		text, err := os.ReadFile(filepath.Join(dir, pipeline.FileDigest))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no digest available"})
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(text)
	})

	return r
}

func readLeads(dir string) ([]model.ScoredLead, error) {
	data, err := os.ReadFile(filepath.Join(dir, pipeline.FileLeads))
	if err != nil {
		return nil, eris.Wrap(err, "serve: read leads file")
	}
	var leads []model.ScoredLead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, eris.Wrap(err, "serve: parse leads file")
	}
	return leads, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "artifact directory to serve (default from config)")
	rootCmd.AddCommand(serveCmd)
}
