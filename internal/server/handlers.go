package server

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/charlievieth/decasify"
)

var conversions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "decasify",
	Name:      "conversions_total",
	Help:      "Number of case conversions by case, locale and style guide.",
}, []string{"case", "locale", "style"})

var tracer = otel.Tracer("github.com/charlievieth/decasify/internal/server")

// CaseRequest is the body of POST /v1/case.
type CaseRequest struct {
	Input     string   `json:"input"`
	Case      string   `json:"case"`
	Locale    string   `json:"locale"`
	Style     string   `json:"style"`
	Overrides []string `json:"overrides" binding:"omitempty,max=1024,dive,required,max=256"`
}

// CaseResponse is the response of POST /v1/case.
type CaseResponse struct {
	Output string `json:"output"`
	Case   string `json:"case"`
	Locale string `json:"locale"`
	Style  string `json:"style"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func abort(c *gin.Context, status int, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: err.Error(),
		Code:    http.StatusText(status),
	})
}

var (
	errInvalidUTF8 = errors.New("input is not valid UTF-8")
	errTooLarge    = errors.New("request body too large")
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": decasify.Version,
	})
}

func (s *Server) convert(c *gin.Context) {
	if s.conf.MaxInputBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.conf.MaxInputBytes)
	}
	data, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			abort(c, http.StatusRequestEntityTooLarge, errTooLarge)
			return
		}
		abort(c, http.StatusBadRequest, err)
		return
	}
	// encoding/json replaces invalid UTF-8 so check the raw body.
	if !utf8.Valid(data) {
		abort(c, http.StatusBadRequest, errInvalidUTF8)
		return
	}
	var req CaseRequest
	if err := binding.JSON.BindBody(data, &req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	mode, err := decasify.ParseCase(req.Case)
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	locale := s.locale
	if req.Locale != "" {
		if locale, err = decasify.ParseLocale(req.Locale); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
	}
	style := s.style
	if req.Style != "" {
		if style, err = decasify.ParseStyleGuide(req.Style); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
	}
	style = style.Resolve(locale)

	_, span := tracer.Start(c.Request.Context(), "decasify.Case",
		trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(
		attribute.String("decasify.case", mode.String()),
		attribute.String("decasify.locale", locale.String()),
		attribute.String("decasify.style", style.String()),
		attribute.Int("decasify.input_bytes", len(req.Input)),
	)
	out := decasify.Case(req.Input, mode, locale, style, decasify.WithOverrides(req.Overrides...))
	span.SetStatus(codes.Ok, "")
	span.End()

	conversions.WithLabelValues(mode.String(), locale.String(), style.String()).Inc()
	c.JSON(http.StatusOK, CaseResponse{
		Output: out,
		Case:   mode.String(),
		Locale: locale.String(),
		Style:  style.String(),
	})
}
