package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gobang/internal/bootstrap"
	"gobang/internal/server/game"
	httpserver "gobang/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have no browser; ignore
}

func main() {
	cfgPath := flag.String("config", "", "optional config file (yaml/json/env)")
	addr := flag.String("addr", "", "listen address, overrides config")
	webDir := flag.String("web", "", "directory with index.html / js, overrides config")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		zap.NewExample().Sugar().Fatalw("failed to load configuration", "error", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}

	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Sugar().Fatalw("failed to build logger", "error", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel, logger)

	games := game.NewManager(logger, cfg.EvalCacheCap)
	h := httpserver.NewHandler(games, logger, httpserver.Options{
		DefaultDepth: cfg.DefaultDepth,
		PollInterval: cfg.PollInterval,
	})
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpserver.NewRouter(h, cfg.WebDir, cfg.MobileDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 3*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if cfg.OpenBrowser && !*noBrowser {
		// Give the listener a moment before the browser connects.
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser(localURL(cfg.ListenAddr))
		}()
	}

	logger.Infow("listening", "addr", cfg.ListenAddr, "web_dir", cfg.WebDir, "depth", cfg.DefaultDepth)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server failed", "error", err)
	}
}

func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

func handleShutdown(cancel context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("received shutdown signal")
	cancel()
}
