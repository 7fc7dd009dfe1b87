// Package web serves the local HTTP API used by the configuration page and
// home automation. Every mutation goes through a Backend, which runs it on
// the controller's goroutine.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

const (
	maxUploadSize   = 10 << 20
	minSearchLength = 2
	shutdownTimeout = 5 * time.Second
)

// Backend applies API requests to the running display.
type Backend interface {
	Snapshot() controller.Snapshot
	SetAlert(idx prayer.Index, on bool) error
	// ToggleRotation flips the display and returns the new value.
	ToggleRotation() (bool, error)
	TestAlert() (bool, error)
	StopAlert() (bool, error)
	// SelectMosque stores the selection and schedules a fetch.
	SelectMosque(sel mawaqit.Selection) error
}

// Searcher looks up mosques by name.
type Searcher interface {
	Search(ctx context.Context, word string) ([]mawaqit.Mosque, error)
}

// Options configures a Server.
type Options struct {
	Backend  Backend
	Searcher Searcher
	// AdhanPath is where uploads are stored and /adhan.mp3 is served from.
	AdhanPath      string
	AllowedOrigins []string
}

// Server is the HTTP API.
type Server struct {
	opts   Options
	engine *gin.Engine
	srv    *http.Server
}

// New builds the router.
func New(opts Options) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.MaxMultipartMemory = maxUploadSize

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	s := &Server{opts: opts, engine: r}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	{
		api.GET("/status", s.status)
		api.GET("/times", s.times)
		api.GET("/settings", s.settings)

		api.POST("/adhan", s.setAdhan)
		api.GET("/adhan/play", s.playAdhan)
		api.GET("/adhan/stop", s.stopAdhan)

		api.GET("/rotate", s.rotate)
		api.POST("/rotate", s.rotate)

		api.GET("/mosque/search", s.searchMosque)
		api.POST("/mosque", s.selectMosque)

		api.POST("/upload", s.upload)
	}
	s.engine.GET("/adhan.mp3", s.adhanFile)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens on addr in the background.
func (s *Server) Start(addr string) {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("web API listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg(errmsg.Format(errmsg.OpWebServe, err))
		}
	}()
}

// Shutdown stops the listener.
func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	}
}
