package calculator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crossroads/crossroads-api/internal/household"
)

func testHousehold() household.Household {
	return household.Household{
		State:        "CO",
		Year:         2024,
		FilingStatus: household.Single,
		Primary:      household.Person{Age: 30, EmploymentIncome: 40000},
	}
}

func TestComputeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calculate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req calculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2024, req.Year)
		assert.Contains(t, req.Situation.People, "person_0")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(calculateResponse{
			Programs: map[string]float64{"income_tax": 2400, "snap": 0},
		})
	}))
	defer srv.Close()

	client := NewPolicyEngineClient(srv.URL, zap.NewNop())
	breakdown, err := client.Compute(context.Background(), testHousehold())

	require.NoError(t, err)
	assert.Equal(t, 2400.0, breakdown["income_tax"])
	assert.Equal(t, 0.0, breakdown["snap"])
}

func TestComputeStatusMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRejection bool
		wantTransient bool
	}{
		{
			name:          "bad request is a rejection",
			status:        http.StatusBadRequest,
			body:          `{"error": "unsupported state"}`,
			wantRejection: true,
		},
		{
			name:          "unprocessable is a rejection",
			status:        http.StatusUnprocessableEntity,
			body:          `{"error": "invalid situation"}`,
			wantRejection: true,
		},
		{
			name:          "server error is transient",
			status:        http.StatusInternalServerError,
			wantTransient: true,
		},
		{
			name:          "gateway timeout is transient",
			status:        http.StatusGatewayTimeout,
			wantTransient: true,
		},
		{
			name:          "rate limit is transient",
			status:        http.StatusTooManyRequests,
			wantTransient: true,
		},
		{
			name:          "request timeout is transient",
			status:        http.StatusRequestTimeout,
			wantTransient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewPolicyEngineClient(srv.URL, zap.NewNop())
			_, err := client.Compute(context.Background(), testHousehold())
			require.Error(t, err)

			var calcErr *CalculationError
			var timeoutErr *TimeoutError
			if tt.wantRejection {
				require.ErrorAs(t, err, &calcErr)
				assert.Equal(t, tt.status, calcErr.Status)
			}
			if tt.wantTransient {
				require.ErrorAs(t, err, &timeoutErr)
			}
		})
	}
}

func TestComputeEngineLevelError(t *testing.T) {
	// A 200 response can still carry an engine-level error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(calculateResponse{Error: "variable not found"})
	}))
	defer srv.Close()

	client := NewPolicyEngineClient(srv.URL, zap.NewNop())
	_, err := client.Compute(context.Background(), testHousehold())

	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "variable not found", calcErr.Reason)
}

func TestComputeUnreachableServer(t *testing.T) {
	client := NewPolicyEngineClient("http://127.0.0.1:1", zap.NewNop(),
		WithTimeout(200*time.Millisecond))

	_, err := client.Compute(context.Background(), testHousehold())

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
}

func TestComputeCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewPolicyEngineClient(srv.URL, zap.NewNop())
	_, err := client.Compute(ctx, testHousehold())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeRejectionReasonFromPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("household too large\n"))
	}))
	defer srv.Close()

	client := NewPolicyEngineClient(srv.URL, zap.NewNop())
	_, err := client.Compute(context.Background(), testHousehold())

	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "household too large", calcErr.Reason)
}
