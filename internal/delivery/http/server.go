package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"

	"chatop/config"
	"chatop/internal/delivery"
	httpmiddleware "chatop/internal/delivery/http/middleware"
	"chatop/internal/delivery/http/router"
	"chatop/internal/delivery/http/validator"
	"chatop/internal/delivery/middleware"
	"chatop/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true

	// Recover first so panics never escape the pipeline
	echoServer.Use(echomiddleware.Recover())

	// Request ID before the logger so every log line carries it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.CORS())

	// Centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	if err := registerUploads(echoServer, params.Config); err != nil {
		return nil, err
	}

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// registerUploads serves the upload directory under the public upload URL so
// the picture URLs persisted on rentals resolve against this server.
func registerUploads(e *echo.Echo, cfg *config.Config) error {
	uploadDir, err := filepath.Abs(cfg.Upload.Dir)
	if err != nil {
		return errors.Wrap(err, "resolve upload directory")
	}

	e.Static(cfg.Upload.URL, uploadDir)

	return nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
