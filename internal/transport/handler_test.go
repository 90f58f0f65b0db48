package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/indexer"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/service"
)

const (
	secpKey      = "A08EGB7ro1ORuFhjOnZcSgwYlpe0DSFjVNUIkNNQxwKQ"
	secpAccount  = "pokt1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmxschvz"
	secpOperator = "poktvaloper1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmyrt486"
	edKey        = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="
	edHex        = "630DCD2966C4336691125448BBB25B4FF412A49C"
	edValcons    = "poktvalcons1vvxu62txcsekdygj23ythvjmfl6p9fyu7hvkre"
)

type fixture struct {
	transactions *MockTransactionFetcher
	indexer      *MockIndexerAPI
	analytics    *MockAnalytics
	router       http.Handler
}

func newFixture(t *testing.T, metrics Metrics) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		transactions: NewMockTransactionFetcher(ctrl),
		indexer:      NewMockIndexerAPI(ctrl),
		analytics:    NewMockAnalytics(ctrl),
	}
	f.router = NewHandler(f.transactions, f.indexer, f.analytics, nil, metrics, zap.NewNop()).NewRouter()
	return f
}

func (f fixture) do(method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHandleHealth(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleTransactions_Filters(t *testing.T) {
	f := newFixture(t, nil)
	minAmount := decimal.RequireFromString("1.5")

	f.transactions.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got model.TransactionFilters) (model.TransactionsResponse, error) {
			assert.Equal(t, "pokt1a", got.Address)
			assert.Equal(t, []string{"pokt1b", "pokt1c"}, got.Addresses)
			assert.Equal(t, []string{"send", "stake"}, got.Types)
			assert.True(t, minAmount.Equal(*got.MinAmount))
			assert.Nil(t, got.MaxAmount)
			assert.Equal(t, 2, got.Page)
			assert.Equal(t, 5, got.Limit)
			assert.Equal(t, model.SortByBlockHeight, got.SortBy)
			assert.Equal(t, model.SortOrderAsc, got.SortOrder)
			return model.TransactionsResponse{
				Data: []model.Transaction{{Hash: "ABC", Amount: decimal.NewFromInt(10)}},
				Meta: model.TransactionsMeta{Total: 1, Page: 2, Limit: 5, TotalPages: 1, IsEstimate: true},
			}, nil
		})

	rec := f.do(http.MethodGet, "/api/v1/transactions?address=pokt1a&addresses=pokt1b,%20pokt1c&types=send,stake"+
		"&min_amount=1.5&page=2&limit=5&sort_by=block_height&sort_order=asc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "ABC", resp.Data[0].Hash)
	assert.True(t, resp.Meta.IsEstimate)
}

func TestHandleTransactions_BadParams(t *testing.T) {
	tests := []string{
		"/api/v1/transactions?limit=ten",
		"/api/v1/transactions?page=-1",
		"/api/v1/transactions?min_amount=lots",
		"/api/v1/transactions/stats?max_amount=1e",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			f := newFixture(t, nil)
			rec := f.do(http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorBody(t, rec), "invalid filter")
		})
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid filter", err: fmt.Errorf("%w: sort_by %q", model.ErrInvalidFilter, "size"), want: http.StatusBadRequest},
		{name: "both sources down", err: &service.UnavailableError{Primary: &indexer.HTTPError{Status: 500}, Fallback: errors.New("rpc")}, want: http.StatusServiceUnavailable},
		{name: "upstream 5xx", err: &indexer.HTTPError{Status: http.StatusInternalServerError, Message: "boom"}, want: http.StatusBadGateway},
		{name: "upstream 404", err: &indexer.HTTPError{Status: http.StatusNotFound, Message: "missing"}, want: http.StatusNotFound},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.transactions.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(model.TransactionsResponse{}, tt.err)

			rec := f.do(http.MethodGet, "/api/v1/transactions", nil)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.err.Error(), errorBody(t, rec))
		})
	}
}

func TestHandlePassThrough(t *testing.T) {
	f := newFixture(t, nil)

	f.indexer.EXPECT().
		FetchTransactionStats(gomock.Any(), model.TransactionFilters{Chain: "pocket", Page: 3}).
		Return(json.RawMessage(`{"total":3}`), nil)
	f.indexer.EXPECT().
		ValidatorPerformance(gomock.Any(), model.PerformanceFilters{
			SupplierAddress: "pokt1a,pokt1b",
			GroupBy:         model.GroupByDay,
			Limit:           50,
		}).
		Return(model.ValidatorPerformanceResponse{Data: []model.PerformanceDataPoint{{Moniker: "node"}}}, nil)
	f.indexer.EXPECT().Domains(gomock.Any(), 0, "pocket").Return(model.DomainLeaderboardResponse(`[{"domain":"a.io"}]`), nil)
	f.indexer.EXPECT().
		SearchSuppliers(gomock.Any(), model.SupplierSearchFilters{Query: "pokt1", Limit: 5}).
		Return(&model.SupplierSearchResponse{OwnerAddresses: []string{"pokt1o"}}, nil)
	f.indexer.EXPECT().SearchSuppliers(gomock.Any(), model.SupplierSearchFilters{}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/v1/transactions/stats?chain=pocket&page=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/validators/performance?supplier_address=pokt1a&supplier_address=pokt1b&group_by=day&limit=50", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"moniker":"node"`)

	rec = f.do(http.MethodGet, "/api/v1/validators/domains?chain=pocket", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"domain":"a.io"}]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/suppliers/search?q=%20pokt1%20&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"owner_addresses":["pokt1o"],"supplier_operator_addresses":null}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/suppliers/search", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"owner_addresses":[],"supplier_operator_addresses":[]}`, rec.Body.String())
}

func TestHandleAnalytics(t *testing.T) {
	f := newFixture(t, nil)
	efficiency := 75.0

	f.analytics.EXPECT().
		NetworkAverages(gomock.Any(), "pocket", "2025-01-01", "2025-01-31").
		Return(model.NetworkAverages{AvgRewards: 200, AvgEfficiency: &efficiency, SampleSize: 2}, nil)
	f.analytics.EXPECT().
		TopPerformers(gomock.Any(), "pocket", "", "").
		Return(model.TopPerformers{SampleSize: 10, Top10Percent: []model.PerformanceDataPoint{}}, nil)
	f.analytics.EXPECT().
		SupplierDashboard(gomock.Any(), service.DashboardQuery{
			SupplierAddress: secpOperator,
			Chain:           "pocket",
			GroupBy:         model.GroupByDay,
			Horizon:         12,
			Threshold:       3,
			Baselines:       false,
		}).
		Return(model.SupplierDashboard{SupplierAddress: secpOperator, Predictions: []model.Prediction{}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/analytics/network-averages?chain=pocket&start_date=2025-01-01&end_date=2025-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"avg_rewards":200,"avg_relays":0,"avg_efficiency":75,"avg_reward_per_relay":null,"sample_size":2}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/analytics/top-performers?chain=pocket", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sample_size":10`)

	rec = f.do(http.MethodGet, "/api/v1/analytics/suppliers/"+secpOperator+"?chain=pocket&group_by=day&horizon=12&threshold=3&baselines=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), secpOperator)

	rec = f.do(http.MethodGet, "/api/v1/analytics/suppliers/"+secpOperator+"?baselines=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSupplierTrendChart(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trend := model.TrendData{
		Dates:        []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)},
		Rewards:      []float64{10, 20, 15},
		Relays:       []float64{100, 100, 100},
		Efficiency:   []float64{90, 91, 92},
		MovingAvg7d:  []float64{10, 15, 15},
		MovingAvg30d: []float64{10, 15, 15},
		Hourly:       true,
	}

	tests := []struct {
		name        string
		trend       model.TrendData
		wantStatus  int
		wantContent string
	}{
		{name: "renders png", trend: trend, wantStatus: http.StatusOK, wantContent: "image/png"},
		{name: "too short", trend: model.TrendData{}, wantStatus: http.StatusNotFound, wantContent: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.analytics.EXPECT().
				SupplierDashboard(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q service.DashboardQuery) (model.SupplierDashboard, error) {
					assert.False(t, q.Baselines)
					assert.Equal(t, "pokt1supplier", q.SupplierAddress)
					return model.SupplierDashboard{Trend: tt.trend}, nil
				})

			rec := f.do(http.MethodGet, "/api/v1/analytics/suppliers/pokt1supplier/trend.png", nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantContent, rec.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusOK {
				assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
			}
		})
	}
}

func TestHandleAddress(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/api/v1/addresses/"+secpOperator, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"address": "`+secpOperator+`",
		"prefix": "poktvaloper",
		"hex": "0D82B1E7C96DBFA42462FE612932E6BFF111D51B",
		"eth": "0x0d82b1e7c96dbfa42462fe612932e6bff111d51b",
		"account": "`+secpAccount+`"
	}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/addresses/pokt1notanaddress", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/operators/"+secpOperator+"/account", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"operator":"`+secpOperator+`","account":"`+secpAccount+`"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/operators/garbage/account", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePubKeyAddresses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       string
	}{
		{
			name:       "ed25519 consensus key",
			body:       `{"pub_key":{"@type":"/cosmos.crypto.ed25519.PubKey","key":"` + edKey + `"},"valcons_prefix":"poktvalcons"}`,
			wantStatus: http.StatusOK,
			want:       `{"consensus_hex":"` + edHex + `","valcons":"` + edValcons + `"}`,
		},
		{
			name:       "bare secp256k1 key",
			body:       `{"pub_key":"` + secpKey + `","account_prefix":"pokt"}`,
			wantStatus: http.StatusOK,
			want:       `{"account":"` + secpAccount + `"}`,
		},
		{
			name:       "missing key",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nothing derivable",
			body:       `{"pub_key":{"@type":"/cosmos.crypto.multisig.LegacyAminoPubKey","key":"` + secpKey + `"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			rec := f.do(http.MethodPost, "/api/v1/pubkeys/address", []byte(tt.body))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.want != "" {
				assert.JSONEq(t, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRouterObservesRouteTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().Observe("/api/v1/addresses/{address}", http.StatusOK, gomock.Any())
	metrics.EXPECT().Observe("/api/v1/addresses/{address}", http.StatusBadRequest, gomock.Any())
	metrics.EXPECT().Observe("/health", http.StatusOK, gomock.Any())

	f := newFixture(t, metrics)
	f.do(http.MethodGet, "/api/v1/addresses/"+secpAccount, nil)
	f.do(http.MethodGet, "/api/v1/addresses/bad", nil)
	f.do(http.MethodGet, "/health", nil)

	rec := f.do(http.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "404"))
}
