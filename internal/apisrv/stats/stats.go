package stats

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/dto"
	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
	"github.com/jekabolt/grbpwr-stats/internal/form"
	"github.com/jekabolt/grbpwr-stats/internal/middleware"
)

// Server serves the shop statistics reports. The caller's shop must be put
// into the request context by middleware.ShopGate.
type Server struct {
	svc dependency.StatisticsService
}

// New creates a new stats server.
func New(svc dependency.StatisticsService) *Server {
	return &Server{svc: svc}
}

// Routes mounts the report endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/orders", s.OrderSummary)
	r.Get("/top-clients", s.TopClients)
	r.Get("/products", s.ProductStats)
	r.Get("/categories", s.CategoryStats)
	r.Get("/global", s.GlobalStats)
}

func (s *Server) OrderSummary(w http.ResponseWriter, r *http.Request) {
	req, err := form.DateRangeFromRequest(r)
	if err != nil {
		writeError(w, r, "can't get order statistics", err)
		return
	}
	m, err := s.svc.OrderSummary(r.Context(), middleware.ShopIDFromContext(r.Context()), req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, r, "can't get order statistics", err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityOrderSummary(m))
}

func (s *Server) TopClients(w http.ResponseWriter, r *http.Request) {
	req, err := form.DateRangeFromRequest(r)
	if err != nil {
		writeError(w, r, "can't get top clients", err)
		return
	}
	tc, err := s.svc.TopClients(r.Context(), middleware.ShopIDFromContext(r.Context()), req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, r, "can't get top clients", err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityTopClients(tc))
}

func (s *Server) ProductStats(w http.ResponseWriter, r *http.Request) {
	req, err := form.YearFromRequest(r)
	if err != nil {
		writeError(w, r, "can't get product statistics", err)
		return
	}
	ps, err := s.svc.ProductStats(r.Context(), middleware.ShopIDFromContext(r.Context()), req.Year)
	if err != nil {
		writeError(w, r, "can't get product statistics", err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityProductMetrics(ps))
}

func (s *Server) CategoryStats(w http.ResponseWriter, r *http.Request) {
	req, err := form.YearFromRequest(r)
	if err != nil {
		writeError(w, r, "can't get category statistics", err)
		return
	}
	cs, err := s.svc.CategoryStats(r.Context(), middleware.ShopIDFromContext(r.Context()), req.Year)
	if err != nil {
		writeError(w, r, "can't get category statistics", err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityCategoryMetrics(cs))
}

func (s *Server) GlobalStats(w http.ResponseWriter, r *http.Request) {
	req, err := form.YearFromRequest(r)
	if err != nil {
		writeError(w, r, "can't get global statistics", err)
		return
	}
	g, err := s.svc.GlobalStats(r.Context(), middleware.ShopIDFromContext(r.Context()), req.Year)
	if err != nil {
		writeError(w, r, "can't get global statistics", err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityGlobalMetrics(g))
}

// writeError maps err onto the response: validation errors become 400 with
// their message, anything else 500 with generic prefixed to the cause.
func writeError(w http.ResponseWriter, r *http.Request, generic string, err error) {
	if gerr.IsValidation(err) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.Error{
			Error:   dto.ErrorValidation,
			Message: gerr.Message(err),
		})
		return
	}
	slog.Default().ErrorContext(r.Context(), generic,
		slog.String("path", r.URL.Path),
		slog.String("err", err.Error()),
	)
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, dto.Error{
		Error:   dto.ErrorInternal,
		Message: generic + ": " + err.Error(),
	})
}
