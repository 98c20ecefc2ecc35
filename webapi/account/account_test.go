package account_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/internal/fixtures/mocks"
	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/jamadeu/multicontas/pkg/domain/money"
	accountsvc "github.com/jamadeu/multicontas/pkg/service/account"
	"github.com/jamadeu/multicontas/webapi/account"
	"github.com/jamadeu/multicontas/webapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.AccountRepository) {
	t.Helper()
	repo := mocks.NewAccountRepository(t)
	svc := accountsvc.NewService(repo, slog.Default())
	app := fiber.New()
	account.Routes(app, svc)
	return app, repo
}

func makeRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCreateAccount(t *testing.T) {
	app, repo := newTestApp(t)
	clientID := uuid.New()
	repo.On("ExistsByNumberAndBranch", mock.Anything, "12345-6", "0001").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp := makeRequest(t, app, "POST", "/v1/accounts",
		`{"accountNumber":"12345-6","branchNumber":"0001","balance":100.50,"clientId":"`+clientID.String()+`"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderLocation), "/v1/accounts/")

	var envelope common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, fiber.StatusCreated, envelope.Status)
}

func TestCreateAccount_Variants(t *testing.T) {
	clientID := uuid.New().String()
	testCases := []struct {
		desc       string
		body       string
		setup      func(repo *mocks.AccountRepository)
		wantStatus int
	}{
		{
			desc:       "missing account number",
			body:       `{"branchNumber":"0001","balance":0,"clientId":"` + clientID + `"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "malformed client id",
			body:       `{"accountNumber":"12345-6","branchNumber":"0001","balance":0,"clientId":"abc"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "negative balance",
			body:       `{"accountNumber":"12345-6","branchNumber":"0001","balance":-1,"clientId":"` + clientID + `"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "sub-centavo balance",
			body:       `{"accountNumber":"12345-6","branchNumber":"0001","balance":10.555,"clientId":"` + clientID + `"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc: "duplicate pair",
			body: `{"accountNumber":"12345-6","branchNumber":"0001","balance":0,"clientId":"` + clientID + `"}`,
			setup: func(repo *mocks.AccountRepository) {
				repo.On("ExistsByNumberAndBranch", mock.Anything, "12345-6", "0001").Return(true, nil)
			},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			app, repo := newTestApp(t)
			if tc.setup != nil {
				tc.setup(repo)
			}
			resp := makeRequest(t, app, "POST", "/v1/accounts", tc.body)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetAccount(t *testing.T) {
	app, repo := newTestApp(t)
	existing, err := domain.NewAccount("12345-6", "0001", money.NewFromData(100_50), uuid.New())
	require.NoError(t, err)
	repo.On("Get", mock.Anything, existing.ID).Return(existing, nil)

	resp := makeRequest(t, app, "GET", "/v1/accounts/"+existing.ID.String(), "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data account.AccountResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, existing.ID.String(), envelope.Data.ID)
	assert.InDelta(t, 100.50, envelope.Data.Balance, 0.001)
}

func TestGetAccount_NotFound(t *testing.T) {
	app, repo := newTestApp(t)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound)

	resp := makeRequest(t, app, "GET", "/v1/accounts/"+id.String(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAccountByNumberAndBranch(t *testing.T) {
	app, repo := newTestApp(t)
	existing, err := domain.NewAccount("12345-6", "0001", money.Zero(), uuid.New())
	require.NoError(t, err)
	repo.On("GetByNumberAndBranch", mock.Anything, "12345-6", "0001").Return(existing, nil)

	resp := makeRequest(t, app, "GET",
		"/v1/accounts/account-number/12345-6/branch-number/0001", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListAccountsByClient(t *testing.T) {
	app, repo := newTestApp(t)
	clientID := uuid.New()
	a, err := domain.NewAccount("12345-6", "0001", money.Zero(), clientID)
	require.NoError(t, err)
	repo.On("ListByClient", mock.Anything, clientID).Return([]*domain.Account{a}, nil)

	resp := makeRequest(t, app, "GET", "/v1/accounts/clientId/"+clientID.String(), "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListAccountsByClient_EmptyIsNotFound(t *testing.T) {
	app, repo := newTestApp(t)
	clientID := uuid.New()
	repo.On("ListByClient", mock.Anything, clientID).Return([]*domain.Account{}, nil)

	resp := makeRequest(t, app, "GET", "/v1/accounts/clientId/"+clientID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateAccount(t *testing.T) {
	app, repo := newTestApp(t)
	existing, err := domain.NewAccount("12345-6", "0001", money.Zero(), uuid.New())
	require.NoError(t, err)
	repo.On("Get", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	resp := makeRequest(t, app, "PUT", "/v1/accounts/"+existing.ID.String(),
		`{"accountNumber":"12345-6","branchNumber":"0001","balance":42,"clientId":"`+existing.ClientID.String()+`"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeposit(t *testing.T) {
	app, repo := newTestApp(t)
	existing, err := domain.NewAccount("12345-6", "0001", money.NewFromData(10_00), uuid.New())
	require.NoError(t, err)
	repo.On("Get", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	resp := makeRequest(t, app, "PUT",
		"/v1/accounts/deposit/account/"+existing.ID.String(), `{"amount":5.50}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(15_50), existing.Balance.Amount())
}

func TestDeposit_Variants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		setup      func(repo *mocks.AccountRepository, id uuid.UUID)
		wantStatus int
	}{
		{
			desc:       "zero amount",
			body:       `{"amount":0}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "negative amount",
			body:       `{"amount":-5}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "sub-centavo amount",
			body:       `{"amount":0.001}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc: "account not found",
			body: `{"amount":5.50}`,
			setup: func(repo *mocks.AccountRepository, id uuid.UUID) {
				repo.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound)
			},
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			app, repo := newTestApp(t)
			id := uuid.New()
			if tc.setup != nil {
				tc.setup(repo, id)
			}
			resp := makeRequest(t, app, "PUT", "/v1/accounts/deposit/account/"+id.String(), tc.body)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	app, repo := newTestApp(t)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	resp := makeRequest(t, app, "DELETE", "/v1/accounts/"+id.String(), "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
