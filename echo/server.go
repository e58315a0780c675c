// Package echo provides the HTTP API for the clip service.
package echo

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mwalczak/clipmark"
)

// Server exposes the clip operation over HTTP.
type Server struct {
	e       *echo.Echo
	clipper clipmark.Clipper
	clips   clipmark.ClipStore
}

// NewServer creates a Server around the given clipper. The clip store is
// optional and backs the listing endpoint when present.
func NewServer(clipper clipmark.Clipper, clips clipmark.ClipStore) *Server {
	s := &Server{
		e:       echo.New(),
		clipper: clipper,
		clips:   clips,
	}

	s.e.HideBanner = true
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.Logger())

	s.e.GET("/", s.handleIndex)
	s.e.POST("/api/clip", s.handleClip)
	s.e.GET("/api/clips", s.handleListClips)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Start listens on addr and serves until Shutdown.
func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "clipmark",
		"status":  "ok",
	})
}

// clipRequest is the POST /api/clip body.
type clipRequest struct {
	URL string `json:"url"`
}

// clipResponse is the POST /api/clip success body.
type clipResponse struct {
	Title string `json:"title"`
	DocID string `json:"docId"`
}

func (s *Server) handleClip(c echo.Context) error {
	var req clipRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, clipmark.Errorf(clipmark.EINVALID, "invalid request body"))
	}
	if req.URL == "" {
		return errorResponse(c, clipmark.Errorf(clipmark.EINVALID, "url required"))
	}

	clip, err := s.clipper.Clip(c.Request().Context(), req.URL)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, clipResponse{
		Title: clip.Title,
		DocID: clip.ID,
	})
}

func (s *Server) handleListClips(c echo.Context) error {
	if s.clips == nil {
		return errorResponse(c, clipmark.Errorf(clipmark.EUNAVAILABLE, "clip store not configured"))
	}

	clips, err := s.clips.FindClips(c.Request().Context(), clipmark.ClipFilter{Limit: 100})
	if err != nil {
		return errorResponse(c, err)
	}
	if clips == nil {
		clips = []*clipmark.Clip{}
	}

	return c.JSON(http.StatusOK, clips)
}

// errorResponse maps app error codes onto HTTP statuses. Terminal pipeline
// failures surface as 500 with the safe-to-show message.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch clipmark.ErrorCode(err) {
	case clipmark.EINVALID:
		status = http.StatusBadRequest
	case clipmark.ENOTFOUND:
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]string{"error": clipmark.ErrorMessage(err)})
}
