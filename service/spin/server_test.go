package spin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/citydeals/spinwheel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	allocateFunc func(ctx context.Context, req Request) (Result, error)
	dryRunFunc   func(ctx context.Context, req Request) (DryRunResult, error)

	allocateReqs []Request
}

func (s *stubService) Allocate(ctx context.Context, req Request) (Result, error) {
	s.allocateReqs = append(s.allocateReqs, req)
	return s.allocateFunc(ctx, req)
}

func (s *stubService) DryRun(ctx context.Context, req Request) (DryRunResult, error) {
	return s.dryRunFunc(ctx, req)
}

func newServerTest(stub *stubService) *http.ServeMux {
	server := &Server{
		service: stub,
		logger:  zap.NewNop(),
	}
	mux := http.NewServeMux()
	server.Register(mux)
	return mux
}

func doSpin(mux *http.ServeMux, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/spin", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func TestServer_Spin_OK(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{
				PrizeKey:   "cash-10",
				PrizeLabel: "cash-10",
				PrizeKind:  model.PrizeKindCash,
				PrizeValue: mustDecimal("10"),
			}, nil
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", `{"device_id": "device-abc", "merchant_id": "coffee-shop"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp spinResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "cash", resp.PrizeKind)
	assert.Equal(t, 10.0, resp.PrizeValue)

	require.Len(t, stub.allocateReqs, 1)
	assert.Equal(t, Request{
		UserID:       "user01",
		DeviceID:     "device-abc",
		IPAddress:    "203.0.113.7",
		MerchantCode: "coffee-shop",
	}, stub.allocateReqs[0])
}

func TestServer_Spin_EmptyBody(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{PrizeKey: "better-luck", PrizeKind: model.PrizeKindCash}, nil
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestServer_Spin_MethodNotAllowed(t *testing.T) {
	mux := newServerTest(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spin", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestServer_Spin_Unauthorized(t *testing.T) {
	mux := newServerTest(&stubService{})

	recorder := doSpin(mux, "", "{}")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServer_Spin_InvalidBody(t *testing.T) {
	mux := newServerTest(&stubService{})

	recorder := doSpin(mux, "user01", "{not json")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_Spin_QuotaDenial(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{}, &QuotaError{SpinsMade: 2, MaxDailySpins: 2}
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", "{}")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	require.NotNil(t, resp.SpinsMadeToday)
	assert.Equal(t, int64(2), *resp.SpinsMadeToday)
	require.NotNil(t, resp.MaxDailySpins)
	assert.Equal(t, int64(2), *resp.MaxDailySpins)
}

func TestServer_Spin_CooldownDenial(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{}, ErrCooldownActive
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", "{}")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, ErrCooldownActive.Error(), resp.Message)
}

func TestServer_Spin_ConfigError(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{}, ErrNoPrizesConfigured
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", "{}")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestServer_Spin_InternalError(t *testing.T) {
	stub := &stubService{
		allocateFunc: func(ctx context.Context, req Request) (Result, error) {
			return Result{}, errors.New("db gone")
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", "{}")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Message, "db gone")
}

func TestServer_Spin_DryRun(t *testing.T) {
	stub := &stubService{
		dryRunFunc: func(ctx context.Context, req Request) (DryRunResult, error) {
			return DryRunResult{
				SpinsMadeToday:  1,
				MaxDailySpins:   3,
				TierName:        "gold",
				TierColor:       "#ffd700",
				SuperSpinActive: true,
				SuperEventName:  "Mega Day",
			}, nil
		},
	}
	mux := newServerTest(stub)

	recorder := doSpin(mux, "user01", `{"dry_run": true}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp dryRunResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, dryRunResponse{
		OK:              true,
		SpinsMadeToday:  1,
		MaxDailySpins:   3,
		TierName:        "gold",
		TierColor:       "#ffd700",
		SuperSpinActive: true,
		SuperEventName:  "Mega Day",
	}, resp)
}
