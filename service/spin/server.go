package spin

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/citydeals/spinwheel/config"
	"github.com/citydeals/spinwheel/pkg/otellib"
	"github.com/citydeals/spinwheel/repository"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// userIDHeader is set by the auth gateway in front of this service after
// token verification, it is never client supplied
const userIDHeader = "X-User-Id"

// Server ...
type Server struct {
	service IService
	logger  *zap.Logger
}

// NewServer ...
func NewServer(provider repository.Provider, conf config.EngineConfig, logger *zap.Logger) *Server {
	service := NewService(
		provider,
		repository.NewPrize(),
		repository.NewCampaign(),
		repository.NewSuperEvent(),
		repository.NewLimit(),
		repository.NewTier(),
		repository.NewLedger(),
		repository.NewOpsEvent(),
		conf,
	)
	return &Server{
		service: NewIServiceWrapper(service,
			otel.GetTracerProvider().Tracer("server"), "service::"),
		logger: logger,
	}
}

// Register ...
func (s *Server) Register(mux *http.ServeMux) {
	mux.Handle("/api/v1/spin", s.middleware(http.HandlerFunc(s.handleSpin)))
}

type spinRequest struct {
	DeviceID   string `json:"device_id"`
	MerchantID string `json:"merchant_id"`
	DryRun     bool   `json:"dry_run"`
}

type spinResponse struct {
	OK             bool    `json:"ok"`
	PrizeValue     float64 `json:"prize_value"`
	PrizeKind      string  `json:"prize_kind"`
	IsSuperSpin    bool    `json:"is_super_spin"`
	SuperEventName string  `json:"super_event_name,omitempty"`
}

type dryRunResponse struct {
	OK              bool   `json:"ok"`
	SpinsMadeToday  int64  `json:"spins_made_today"`
	MaxDailySpins   int64  `json:"max_daily_spins"`
	TierName        string `json:"tier_name"`
	TierColor       string `json:"tier_color,omitempty"`
	SuperSpinActive bool   `json:"super_spin_active"`
	SuperEventName  string `json:"super_event_name,omitempty"`
}

type errorResponse struct {
	OK             bool   `json:"ok"`
	Message        string `json:"message"`
	SpinsMadeToday *int64 `json:"spins_made_today,omitempty"`
	MaxDailySpins  *int64 `json:"max_daily_spins,omitempty"`
}

func (s *Server) handleSpin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
		return
	}

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
		return
	}

	var body spinRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	req := Request{
		UserID:       userID,
		DeviceID:     body.DeviceID,
		IPAddress:    clientIP(r),
		MerchantCode: body.MerchantID,
	}

	if body.DryRun {
		result, err := s.service.DryRun(r.Context(), req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dryRunResponse{
			OK:              true,
			SpinsMadeToday:  result.SpinsMadeToday,
			MaxDailySpins:   result.MaxDailySpins,
			TierName:        result.TierName,
			TierColor:       result.TierColor,
			SuperSpinActive: result.SuperSpinActive,
			SuperEventName:  result.SuperEventName,
		})
		return
	}

	result, err := s.service.Allocate(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	value, _ := result.PrizeValue.Float64()
	writeJSON(w, http.StatusOK, spinResponse{
		OK:             true,
		PrizeValue:     value,
		PrizeKind:      result.PrizeKind.String(),
		IsSuperSpin:    result.IsSuperSpin,
		SuperEventName: result.SuperEventName,
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var quotaErr *QuotaError
	if errors.As(err, &quotaErr) {
		writeJSON(w, http.StatusOK, errorResponse{
			Message:        "You have reached your daily spin limit",
			SpinsMadeToday: &quotaErr.SpinsMade,
			MaxDailySpins:  &quotaErr.MaxDailySpins,
		})
		return
	}
	if IsDenial(err) {
		writeJSON(w, http.StatusOK, errorResponse{Message: err.Error()})
		return
	}

	if errors.Is(err, ErrNoPrizesConfigured) || errors.Is(err, ErrSafePrizeMissing) {
		otellib.Extract(r.Context()).Error("spin configuration error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Message: "Spinning is temporarily unavailable"})
		return
	}

	otellib.Extract(r.Context()).Error("spin request failed", zap.Error(err))
	writeJSON(w, http.StatusServiceUnavailable,
		errorResponse{Message: "Something went wrong, please try again"})
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := otellib.ToContext(r.Context(), s.logger)
		r = r.WithContext(ctx)

		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler", zap.Any("recover", rec))
				writeJSON(w, http.StatusInternalServerError,
					errorResponse{Message: "Something went wrong, please try again"})
			}
		}()

		next.ServeHTTP(w, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
