package mobile

import (
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gobang/internal/engine"
	"gobang/internal/server/game"
	httpserver "gobang/internal/server/http"
)

// StartServer starts the local HTTP server and returns the address it listens on.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"; "0" picks a free one
func StartServer(webDir string, port string) (string, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()

	h := httpserver.NewHandler(game.NewManager(log, 0), log, httpserver.Options{
		DefaultDepth: engine.DefaultDepth,
		PollInterval: 100 * time.Millisecond,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return "", err
	}
	srv := &http.Server{
		Handler:           httpserver.NewRouter(h, webDir, webDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server error", "error", err)
		}
	}()
	return ln.Addr().String(), nil
}
