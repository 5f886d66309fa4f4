// Package server exposes the colour engine over HTTP with JSON responses.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kovidgoyal/unicolour"
)

var _ = fmt.Print

// Number is a float64 that encodes NaN and infinities as JSON null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type Temperature struct {
	CCT Number `json:"cct"`
	Duv Number `json:"duv"`
}

type Colour struct {
	Hex             string               `json:"hex"`
	Alpha           Number               `json:"alpha"`
	InGamut         bool                 `json:"in_gamut"`
	Temperature     Temperature          `json:"temperature"`
	Representations map[string][3]Number `json:"representations"`
}

func describe(u *unicolour.Unicolour) Colour {
	t := u.Temperature()
	ans := Colour{
		Hex:             u.HexWithAlpha(),
		Alpha:           Number(u.Alpha().A),
		InGamut:         u.IsInDisplayGamut(),
		Temperature:     Temperature{Number(t.CCT), Number(t.Duv)},
		Representations: make(map[string][3]Number, len(unicolour.Spaces())),
	}
	for _, s := range unicolour.Spaces() {
		r, _ := u.Get(s)
		a, b, c := r.Values()
		ans.Representations[s.String()] = [3]Number{Number(a), Number(b), Number(c)}
	}
	return ans
}

type Server struct {
	config *unicolour.Configuration
	router chi.Router
}

// New builds the router. A nil config means the default configuration.
func New(config *unicolour.Configuration) *Server {
	if config == nil {
		config = unicolour.DefaultConfiguration
	}
	s := &Server{config: config}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Get("/colour/{hex}", s.handleColour)
	r.Get("/contrast", s.handleContrast)
	r.Get("/difference", s.handleDifference)
	r.Get("/mix", s.handleMix)
	r.Get("/gamut", s.handleGamut)
	r.Get("/simulate/{hex}/{deficiency}", s.handleSimulate)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		unicolour.Logger().Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		unicolour.Logger().Debug("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// colour parses a hex colour or an SVG colour name.
func (s *Server) colour(spec string) (*unicolour.Unicolour, error) {
	if spec == "" {
		return nil, errors.New("missing colour")
	}
	u, err := s.config.FromHex(spec)
	if err == nil {
		return u, nil
	}
	if n, nerr := s.config.FromName(spec); nerr == nil {
		return n, nil
	}
	return nil, err
}

func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (s *Server) pair(r *http.Request) (a, b *unicolour.Unicolour, err error) {
	q := r.URL.Query()
	if a, err = s.colour(q.Get("a")); err != nil {
		return nil, nil, fmt.Errorf("a: %w", err)
	}
	if b, err = s.colour(q.Get("b")); err != nil {
		return nil, nil, fmt.Errorf("b: %w", err)
	}
	return
}

func (s *Server) handleColour(w http.ResponseWriter, r *http.Request) {
	u, err := s.colour(urlParam(r, "hex"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(u))
}

func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.pair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]Number{"contrast": Number(a.Contrast(b))})
}

func (s *Server) handleDifference(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.pair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	metric := unicolour.CIEDE2000
	if m := r.URL.Query().Get("metric"); m != "" {
		if metric, err = unicolour.MetricFromName(m); err != nil {
			writeError(w, err)
			return
		}
	}
	d, err := a.Difference(b, metric)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"metric": metric, "difference": Number(d)})
}

func parseSpace(q string, def unicolour.Space) (unicolour.Space, error) {
	if q == "" {
		return def, nil
	}
	return unicolour.SpaceFromName(q)
}

func (s *Server) handleMix(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.pair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	space, err := parseSpace(q.Get("space"), unicolour.Oklab)
	if err != nil {
		writeError(w, err)
		return
	}
	amount := 0.5
	if v := q.Get("amount"); v != "" {
		if amount, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, fmt.Errorf("amount: %w", err))
			return
		}
	}
	premultiply := false
	if v := q.Get("premultiply"); v != "" {
		if premultiply, err = strconv.ParseBool(v); err != nil {
			writeError(w, fmt.Errorf("premultiply: %w", err))
			return
		}
	}
	m, err := a.Mix(b, space, amount, premultiply)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(m))
}

func parseValues(v string) (ans [3]float64, err error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return ans, fmt.Errorf("values needs 3 comma separated numbers, got %q", v)
	}
	for i, p := range parts {
		if ans[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return ans, fmt.Errorf("values: %w", err)
		}
	}
	return
}

func (s *Server) handleGamut(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	space, err := parseSpace(q.Get("space"), unicolour.RGB)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := parseValues(q.Get("values"))
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := s.config.New(space, v[0], v[1], v[2], 1)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(u.MapToGamut()))
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	u, err := s.colour(urlParam(r, "hex"))
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := unicolour.DeficiencyFromName(urlParam(r, "deficiency"))
	if err != nil {
		writeError(w, err)
		return
	}
	sim, err := u.Simulate(d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(sim))
}

// ListenAndServe serves the API on addr until the server fails.
func ListenAndServe(addr string, config *unicolour.Configuration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           New(config),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
