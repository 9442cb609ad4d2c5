package transaction_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/penny/internal/http/transaction"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/ledger/store"
)

func newServer(t *testing.T) (*httptest.Server, *ledger.Service) {
	t.Helper()

	svc := ledger.NewService(store.New())

	r := chi.NewRouter()
	r.Route("/", transaction.NewHandler(svc).Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, svc
}

func TestHandler_Create(t *testing.T) {
	srv, _ := newServer(t)

	body := `{"description":"Uber to work","amount_cents":2200}`

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		AmountCents int64  `json:"amount_cents"`
		Category    string `json:"category"`
		Type        string `json:"type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Uber to work", got.Description)
	assert.Equal(t, int64(2200), got.AmountCents)
	assert.Equal(t, "transport", got.Category)
	assert.Equal(t, "expense", got.Type)
}

func TestHandler_CreateInvalid(t *testing.T) {
	type testCase struct {
		name string
		body string
	}

	tests := []testCase{
		{name: "ZeroAmount", body: `{"description":"Lunch","amount_cents":0}`},
		{name: "EmptyDescription", body: `{"description":"  ","amount_cents":100}`},
		{name: "UnknownCategory", body: `{"description":"Lunch","amount_cents":100,"category":"bogus"}`},
		{name: "MalformedJSON", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t)

			resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_Summary(t *testing.T) {
	srv, svc := newServer(t)
	ctx := t.Context()

	_, err := svc.AddTransaction(ctx, ledger.CreateParams{Description: "Monthly salary", AmountCents: 500000, Category: "salary", Type: ledger.TypeIncome})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, ledger.CreateParams{Description: "Lunch delivery", AmountCents: 3500})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/summary")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		BalanceCents       int64 `json:"balance_cents"`
		TotalIncomeCents   int64 `json:"total_income_cents"`
		TotalExpensesCents int64 `json:"total_expenses_cents"`
		ByCategory         []struct {
			Category   string `json:"category"`
			TotalCents int64  `json:"total_cents"`
		} `json:"by_category"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, int64(496500), got.BalanceCents)
	assert.Equal(t, int64(500000), got.TotalIncomeCents)
	assert.Equal(t, int64(3500), got.TotalExpensesCents)
	require.Len(t, got.ByCategory, 1)
	assert.Equal(t, "food", got.ByCategory[0].Category)
}
