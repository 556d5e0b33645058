package cli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/urfave/cli/v3"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 300
	serverMaxHeaderBytes      = 20
	serverPortDefault         = 8080

	portFlagName      = "port"
	noBrowserFlagName = "no-browser"
)

//go:embed templates/*
var embedFS embed.FS

func previewCmd() *cli.Command {
	return &cli.Command{
		Name:    "preview",
		Aliases: []string{"serve"},
		Usage:   "Serve the interactive gauge on a local page",
		Action:  cmdPreview,
		Flags: append([]cli.Flag{
			&cli.FloatFlag{
				Name:  scoreFlagName,
				Usage: "Initial score (default: middle of the slab domain)",
			},
			&cli.IntFlag{
				Name:  portFlagName,
				Usage: "Port on which the server will listen",
				Value: serverPortDefault,
			},
			&cli.BoolFlag{
				Name:    noBrowserFlagName,
				Aliases: []string{"nb"},
				Usage:   "Do not open browser automatically",
			},
		}, chartFlags()...),
	}
}

// preview holds what every request renders against.
type preview struct {
	slabs gauge.Slabs
	score float64
	opts  *chartOptions
}

func cmdPreview(ctx context.Context, cmd *cli.Command) error {
	set, err := resolveSlabs(ctx, cmd)
	if err != nil {
		return err
	}

	o, err := chartOptionsFrom(ctx, cmd)
	if err != nil {
		return err
	}
	if !cmd.IsSet(animateFlagName) {
		o.Animate = true
	}

	lo, hi := set.Domain()
	p := &preview{slabs: set, score: (lo + hi) / 2, opts: o}
	if cmd.IsSet(scoreFlagName) {
		p.score = cmd.Float(scoreFlagName)
	}

	address := fmt.Sprintf("127.0.0.1:%d", cmd.Int(portFlagName))
	s := &http.Server{
		Addr:           address,
		Handler:        makeRouter(p),
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	url := fmt.Sprintf("http://%s", address)
	slog.Info("preview started", "address", url)

	if !cmd.Bool(noBrowserFlagName) {
		openBrowser(url)
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error shutting down server", "error", err)
	}
	return nil
}

func makeRouter(p *preview) *http.ServeMux {
	tmpl := template.Must(template.New("").ParseFS(embedFS, "templates/*.html"))

	mux := http.NewServeMux()

	// Views
	mux.HandleFunc("GET /{$}", previewViewHandler(tmpl, p))

	// Charts
	mux.HandleFunc("GET /gauge.svg", chartHandler(p, chartSVG))
	mux.HandleFunc("GET /gauge.png", chartHandler(p, chartPNG))
	mux.HandleFunc("GET /gauge.gif", chartHandler(p, chartGIF))

	return mux
}

func openBrowser(url string) {
	var cmd string
	args := make([]string, 0, 1)

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "linux":
		cmd = "xdg-open"
	default: // windows
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	}

	args = append(args, url)
	if err := exec.Command(cmd, args...).Start(); err != nil {
		slog.Error("failed to open browser", "error", err)
	}
}
