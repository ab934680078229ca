package web

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/goserg/elocalc/internal/config"
	"github.com/goserg/elocalc/internal/elo"
	"github.com/goserg/elocalc/internal/web/webpath"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

type Server struct {
	calc   elo.Calculator
	method elo.Method
	log    *logrus.Logger
	app    *fiber.App
	cfg    config.Server
}

// New builds the http host. method is used when a points request has none.
func New(calc elo.Calculator, method elo.Method, cfg config.Server, log *logrus.Logger) *Server {
	server := Server{
		calc:   calc,
		method: method,
		log:    log,
		cfg:    cfg,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          server.handleError,
	})
	app.Use(server.requestLogger)
	app.Get(webpath.ApiEloParams, server.handleParams)
	app.Post(webpath.ApiEloOutcome, server.handleOutcome)
	app.Post(webpath.ApiEloPoints, server.handlePoints)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	s.log.WithField("addr", s.addr()).Info("listening")
	return s.app.Listen(s.addr())
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) addr() string {
	return s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
}

func (s *Server) requestLogger(ctx *fiber.Ctx) error {
	id := uuid.New()
	ctx.Locals(requestIDKey, id)
	ctx.Set(requestIDHeader, id.String())
	start := time.Now()
	err := ctx.Next()
	entry := s.log.WithFields(logrus.Fields{
		"request_id": id.String(),
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"duration":   time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Warn("request failed")
		return err
	}
	entry.WithField("status", ctx.Response().StatusCode()).Debug("request")
	return nil
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, elo.ErrInvalidArgument):
		code = fiber.StatusBadRequest
	case errors.As(err, &ferr):
		code = ferr.Code
	}
	return ctx.Status(code).JSON(newErrorResponse(err))
}

func (s *Server) handleParams(ctx *fiber.Ctx) error {
	return ctx.JSON(paramsResponse{
		Params: s.calc.Params(),
		Method: s.method,
		Routes: webpath.Path(),
	})
}

func (s *Server) handleOutcome(ctx *fiber.Ctx) error {
	var req outcomeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := req.Validate(); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	newA, newB, err := s.calc.UpdateFromOutcome(*req.RatingA, *req.RatingB, *req.Outcome)
	if err != nil {
		return err
	}
	return ctx.JSON(newRatingResponse(*req.RatingA, *req.RatingB, newA, newB))
}

func (s *Server) handlePoints(ctx *fiber.Ctx) error {
	var req pointsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := req.Validate(); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	newA, newB, err := s.calc.UpdateFromPoints(*req.RatingA, *req.RatingB, *req.PointsA, *req.PointsB, req.options(s.method)...)
	if err != nil {
		return err
	}
	return ctx.JSON(newRatingResponse(*req.RatingA, *req.RatingB, newA, newB))
}
