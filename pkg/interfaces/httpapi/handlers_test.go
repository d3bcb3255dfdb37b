package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/lotsize/pkg/domain/entities"
	"github.com/vsinha/lotsize/pkg/interfaces/httpapi"
)

type policyResponse struct {
	Data entities.OrderPolicy `json:"data"`
}

type curveResponse struct {
	Data httpapi.CurveResponse `json:"data"`
}

type errorResponse struct {
	Error httpapi.ErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Logger:        zerolog.Nop(),
		DefaultPoints: 50,
	})
	return httpapi.NewRouter(httpapi.RouterConfig{
		Handler: handler,
		Logger:  zerolog.Nop(),
	})
}

func TestPolicyEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":2,"unit_cost":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/policies", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp policyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, entities.SKU("WIDGET_A"), resp.Data.SKU)
	require.InDelta(t, 158.11388300841898, resp.Data.OrderQuantity, 1e-9)
	require.InDelta(t, 8316.227766016838, resp.Data.Costs.TotalCost, 1e-6)
	require.InDelta(t, resp.Data.Costs.OrderingCost, resp.Data.Costs.HoldingCost, 1e-9)
}

func TestPolicyEndpoint_Validation(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name string
		body string
	}{
		{"missing annual demand", `{"sku":"WIDGET_A","order_cost":25,"holding_cost":2}`},
		{"zero holding cost", `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":0}`},
		{"negative unit cost", `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":2,"unit_cost":-1}`},
		{"missing sku", `{"annual_demand":1000,"order_cost":25,"holding_cost":2}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/policies", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "VALIDATION", resp.Error.Code)
		})
	}
}

func TestPolicyEndpoint_BadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/policies", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestCurveEndpoint_DefaultRange(t *testing.T) {
	router := newTestRouter(t)

	body := `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":2,"unit_cost":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/curves", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp curveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, entities.SKU("WIDGET_A"), resp.Data.SKU)
	require.Len(t, resp.Data.Points, 50)
	for _, point := range resp.Data.Points {
		require.Greater(t, point.Quantity, 0.0)
		require.Greater(t, point.Costs.TotalCost, 0.0)
	}
}

func TestCurveEndpoint_ExplicitRange(t *testing.T) {
	router := newTestRouter(t)

	body := `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":2,"unit_cost":8,` +
		`"min_qty":50,"max_qty":400,"points":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/curves", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp curveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Points, 8)
	require.InDelta(t, 50, resp.Data.Points[0].Quantity, 1e-9)
	require.InDelta(t, 400, resp.Data.Points[7].Quantity, 1e-9)
}

func TestCurveEndpoint_BadRange(t *testing.T) {
	router := newTestRouter(t)

	body := `{"sku":"WIDGET_A","annual_demand":1000,"order_cost":25,"holding_cost":2,` +
		`"min_qty":400,"max_qty":50,"points":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/curves", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_RANGE", resp.Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
}
