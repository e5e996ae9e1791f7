package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"acorn/config"
	"acorn/internal/delivery/http/middleware"
	"acorn/internal/delivery/http/validator"
	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/infra/metrics"
	mockSvc "acorn/internal/mocks/service"
	mockUsecase "acorn/internal/mocks/usecase"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const invoiceID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newFormContext builds a context for a form POST to target with optional route params.
func newFormContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

type authHandlerFixtures struct {
	authUC   *mockUsecase.MockAuthUsecase
	signupUC *mockUsecase.MockSignupUsecase
	handler  *AuthHandler
}

func createTestAuthHandler(t *testing.T) *authHandlerFixtures {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	signupUC := mockUsecase.NewMockSignupUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "acorn_session"}}

	return &authHandlerFixtures{
		authUC:   authUC,
		signupUC: signupUC,
		handler: NewAuthHandler(AuthHandlerParams{
			AuthUC:   authUC,
			SignupUC: signupUC,
			Cookie:   middleware.NewSessionCookie(cfg),
			Metrics:  metrics.New(),
			Logger:   discardLogger(),
		}),
	}
}

func TestAuthHandler_Login(t *testing.T) {
	form := url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}

	t.Run("success sets the session cookie", func(t *testing.T) {
		f := createTestAuthHandler(t)
		expiresAt := time.Now().Add(24 * time.Hour)
		f.authUC.EXPECT().
			Authenticate(mock.Anything, usecase.LoginInput{Email: "user@nextmail.com", Password: "123456"}, mock.AnythingOfType("usecase.SessionMeta")).
			Return(&usecase.AuthOutcome{
				Result:  usecase.Redirect(usecase.PathDashboard),
				Session: &usecase.IssuedSession{Token: "tok", ExpiresAt: expiresAt},
			})

		c, rec := newFormContext(newTestEcho(), http.MethodPost, "/login", form)

		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathDashboard, rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "acorn_session=tok")
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := createTestAuthHandler(t)
		fields := usecase.FieldErrors{"credentials": {"Invalid credentials."}}
		f.authUC.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).
			Return(&usecase.AuthOutcome{Result: usecase.Invalid(fields, "Invalid credentials.")})

		c, rec := newFormContext(newTestEcho(), http.MethodPost, "/login", form)

		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
		assert.Contains(t, rec.Body.String(), "Invalid credentials.")
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	f := createTestAuthHandler(t)
	f.signupUC.EXPECT().
		SignUp(mock.Anything, usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "analytical"}, mock.Anything).
		Return(&usecase.AuthOutcome{Result: usecase.RedirectWithMessage(usecase.PathLogin, "Account created. Please log in.")})

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"analytical"}}
	c, rec := newFormContext(newTestEcho(), http.MethodPost, "/signup", form)

	require.NoError(t, f.handler.Signup(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, usecase.PathLogin, rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func TestAuthHandler_Logout(t *testing.T) {
	f := createTestAuthHandler(t)
	f.authUC.EXPECT().SignOut(mock.Anything, "tok").Return(usecase.Redirect(usecase.PathHome))

	c, rec := newFormContext(newTestEcho(), http.MethodPost, "/logout", nil)
	c.Request().AddCookie(&http.Cookie{Name: "acorn_session", Value: "tok"})

	require.NoError(t, f.handler.Logout(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, usecase.PathHome, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
}

type invoiceHandlerFixtures struct {
	queryUC    *mockUsecase.MockInvoiceQueryUsecase
	mutationUC *mockUsecase.MockInvoiceMutationUsecase
	qrCode     *mockSvc.MockQRCodeService
	handler    *InvoiceHandler
}

func createTestInvoiceHandler(t *testing.T) *invoiceHandlerFixtures {
	queryUC := mockUsecase.NewMockInvoiceQueryUsecase(t)
	mutationUC := mockUsecase.NewMockInvoiceMutationUsecase(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	return &invoiceHandlerFixtures{
		queryUC:    queryUC,
		mutationUC: mutationUC,
		qrCode:     qrCode,
		handler: NewInvoiceHandler(InvoiceHandlerParams{
			QueryUC:    queryUC,
			MutationUC: mutationUC,
			QRCode:     qrCode,
			Metrics:    metrics.New(),
			Logger:     discardLogger(),
		}),
	}
}

func sampleDetail() *entity.InvoiceDetail {
	return &entity.InvoiceDetail{
		Invoice: entity.Invoice{
			ID:            uuid.MustParse(invoiceID),
			CustomerID:    uuid.New(),
			AmountInCents: 15795,
			Status:        entity.InvoiceStatusPending,
			Date:          time.Date(2022, time.December, 6, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:  "Evil Rabbit",
		CustomerEmail: "evil@rabbit.com",
		Items: []*entity.InvoiceItem{
			{ID: uuid.New(), Description: "Design", Quantity: 3, UnitPriceInCents: 5265},
		},
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	t.Run("lenient page and trimmed query", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		f.queryUC.EXPECT().FetchFilteredInvoices(mock.Anything, "rabbit", 1).Return(&usecase.InvoicePage{
			Invoices: []*entity.InvoiceListItem{{
				ID:            uuid.MustParse(invoiceID),
				CustomerName:  "Evil Rabbit",
				AmountInCents: 1235,
				Status:        entity.InvoiceStatusPaid,
				Date:          time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC),
			}},
			Query:      "rabbit",
			Page:       1,
			TotalPages: 1,
			TotalCount: 1,
		}, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=+rabbit+&page=abc", nil), rec)

		require.NoError(t, f.handler.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"amount":"12.35"`)
		assert.Contains(t, body, `"date":"2023-06-05"`)
		assert.Contains(t, body, `"total_pages":1`)
	})

	t.Run("overlong query is rejected", func(t *testing.T) {
		f := createTestInvoiceHandler(t)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query="+strings.Repeat("q", 256), nil), rec)

		require.NoError(t, f.handler.List(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("store failure is not an empty page", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find invoices")
		f.queryUC.EXPECT().FetchFilteredInvoices(mock.Anything, "", 2).Return(nil, storeErr)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?page=2", nil), rec)

		require.NoError(t, f.handler.List(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestInvoiceHandler_Detail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		f.queryUC.EXPECT().FetchInvoiceByID(mock.Anything, invoiceID).Return(sampleDetail(), true, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(invoiceID)

		require.NoError(t, f.handler.Detail(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"amount":"157.95"`)
		assert.Contains(t, body, `"unit_price":"52.65"`)
		assert.NotContains(t, body, "billing_address")
	})

	t.Run("absent", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		f.queryUC.EXPECT().FetchInvoiceByID(mock.Anything, "nope").Return(nil, false, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, f.handler.Detail(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVOICE_NOT_FOUND")
	})
}

func TestInvoiceHandler_Create(t *testing.T) {
	f := createTestInvoiceHandler(t)
	input := usecase.InvoiceFormInput{CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: "157.95", Status: "pending"}
	f.mutationUC.EXPECT().CreateInvoice(mock.Anything, input).Return(usecase.Redirect(usecase.PathInvoices))

	form := url.Values{"customerId": {input.CustomerID}, "amount": {input.Amount}, "status": {input.Status}}
	c, rec := newFormContext(newTestEcho(), http.MethodPost, "/dashboard/invoices", form)

	require.NoError(t, f.handler.Create(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, usecase.PathInvoices, rec.Header().Get(echo.HeaderLocation))
}

func TestInvoiceHandler_Update(t *testing.T) {
	f := createTestInvoiceHandler(t)
	fields := usecase.FieldErrors{"amount": {"Please enter an amount greater than $0."}}
	f.mutationUC.EXPECT().
		UpdateInvoice(mock.Anything, invoiceID, usecase.InvoiceFormInput{Amount: "0"}).
		Return(usecase.Invalid(fields, "Missing or invalid fields. Failed to update invoice."))

	c, rec := newFormContext(newTestEcho(), http.MethodPut, "/", url.Values{"amount": {"0"}})
	c.SetParamNames("id")
	c.SetParamValues(invoiceID)

	require.NoError(t, f.handler.Update(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter an amount greater than $0.")
}

func TestInvoiceHandler_Delete(t *testing.T) {
	f := createTestInvoiceHandler(t)
	f.mutationUC.EXPECT().DeleteInvoice(mock.Anything, invoiceID).Return(usecase.Done("Deleted invoice."))

	c, rec := newFormContext(newTestEcho(), http.MethodDelete, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(invoiceID)

	require.NoError(t, f.handler.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Deleted invoice."`)
}

func TestInvoiceHandler_QRCode(t *testing.T) {
	t.Run("renders png for an existing invoice", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		f.queryUC.EXPECT().FetchInvoiceByID(mock.Anything, invoiceID).Return(sampleDetail(), true, nil)
		f.qrCode.EXPECT().GenerateInvoiceQR(uuid.MustParse(invoiceID)).Return(png, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(invoiceID)

		require.NoError(t, f.handler.QRCode(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("absent invoice has no code", func(t *testing.T) {
		f := createTestInvoiceHandler(t)
		f.queryUC.EXPECT().FetchInvoiceByID(mock.Anything, invoiceID).Return(nil, false, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(invoiceID)

		require.NoError(t, f.handler.QRCode(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCustomerHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		customerUC := mockUsecase.NewMockCustomerQueryUsecase(t)
		customerUC.EXPECT().FetchFilteredCustomers(mock.Anything, "amy", 3).Return(&usecase.CustomerPage{
			Customers:  []*entity.Customer{{ID: uuid.New(), Name: "Amy Burns", Email: "amy@burns.com"}},
			Query:      "amy",
			Page:       3,
			TotalPages: 3,
			TotalCount: 21,
		}, nil)
		h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/customers?query=amy&page=3", nil), rec)

		require.NoError(t, h.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Amy Burns"`)
		assert.Contains(t, rec.Body.String(), `"total_count":21`)
	})

	t.Run("options over the cap", func(t *testing.T) {
		customerUC := mockUsecase.NewMockCustomerQueryUsecase(t)
		customerUC.EXPECT().FetchCustomersForSelect(mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrTooManyCustomers))
		h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/customers/options", nil), rec)

		require.NoError(t, h.Options(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOO_MANY_CUSTOMERS")
	})
}

func TestDashboardHandler_Overview(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	invoiceUC := mockUsecase.NewMockInvoiceQueryUsecase(t)
	dashboardUC.EXPECT().FetchCardData(mock.Anything).Return(&entity.CardData{
		NumberOfInvoices:    13,
		NumberOfCustomers:   6,
		TotalPaidInCents:    1_000_050,
		TotalPendingInCents: 2500,
	}, nil)
	invoiceUC.EXPECT().FetchLatestInvoices(mock.Anything).Return([]*entity.InvoiceListItem{}, nil)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC, InvoiceUC: invoiceUC})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil).WithContext(context.Background())
	c := e.NewContext(req, rec)

	require.NoError(t, h.Overview(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total_paid_invoices":"10000.50"`)
	assert.Contains(t, body, `"total_pending_invoices":"25.00"`)
	assert.Contains(t, body, `"latest_invoices":[]`)
}
