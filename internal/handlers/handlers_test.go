package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/handlers"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/SscSPs/remittance_web/internal/platform/config"
	"github.com/SscSPs/remittance_web/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "handlers-test-secret"
	testUserID = "user-7"
)

// confirmedWith matches a Confirmer carrying the given decision.
func confirmedWith(want bool) interface{} {
	return mock.MatchedBy(func(c portssvc.Confirmer) bool {
		return c(context.Background(), "") == want
	})
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string

	limitState  *MockLimitStateService
	limitEditor *MockLimitEditorService
	remittance  *MockRemittanceService
	rates       *MockExchangeRateService
	accounts    *MockBankAccountService
	board       *MockBoardService
	files       *MockFileService
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.limitState = new(MockLimitStateService)
	s.limitEditor = new(MockLimitEditorService)
	s.remittance = new(MockRemittanceService)
	s.rates = new(MockExchangeRateService)
	s.accounts = new(MockBankAccountService)
	s.board = new(MockBoardService)
	s.files = new(MockFileService)

	container := &portssvc.ServiceContainer{
		LimitState:   s.limitState,
		LimitEditor:  s.limitEditor,
		Remittance:   s.remittance,
		BankAccount:  s.accounts,
		ExchangeRate: s.rates,
		Board:        s.board,
		Files:        s.files,
	}
	cfg := &config.Config{JWTSecret: testSecret, IsProduction: true}

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(s.router, cfg, container, nil)

	token, err := utils.GenerateSessionToken(testUserID, testSecret, time.Hour, "test")
	s.Require().NoError(err)
	s.token = token
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+s.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) doJSON(method, path string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
	}
	return s.do(method, path, body, "application/json")
}

func (s *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *HandlersTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestRequiresToken() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/limits", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
	s.limitState.AssertNotCalled(s.T(), "Read", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestGetLimitState() {
	pendingID := int64(9)
	s.limitState.On("Read", mock.Anything, testUserID).Return(&domain.LimitState{
		CurrentLimit:  domain.RemittanceLimit{DailyLimit: 5000000, MonthlyLimit: 20000000, SingleLimit: 5000000, LimitType: domain.DefaultLimit},
		ActiveRequest: &domain.LimitRequest{ID: pendingID, Status: domain.StatusPending},
	}, nil).Once()

	w := s.doJSON(http.MethodGet, "/api/v1/limits", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.LimitStateResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("5,000,000", resp.CurrentLimit.DailyLimitFormatted)
	s.Equal(pendingID, resp.ActiveRequest.ID)
	s.False(resp.CanRequest)
	s.False(resp.CanReRequest)
	s.limitState.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestGetLimitState_Unavailable() {
	s.limitState.On("Read", mock.Anything, testUserID).
		Return(nil, apperrors.ErrLimitUnavailable).Once()

	w := s.doJSON(http.MethodGet, "/api/v1/limits", nil)
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("cannot load limit info", s.decodeError(w).Error)
}

func (s *HandlersTestSuite) TestOpenEditor() {
	s.limitEditor.On("Open", mock.Anything, testUserID, domain.EditMode(4)).
		Return(&domain.EditorSnapshot{Mode: domain.ModeEdit}, nil).Once()

	w := s.doJSON(http.MethodPost, "/api/v1/limit-requests/editor", dto.OpenEditorRequest{Mode: "EDIT", RequestID: 4})
	s.Equal(http.StatusCreated, w.Code)
	s.limitEditor.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestOpenEditor_EditWithoutID() {
	w := s.doJSON(http.MethodPost, "/api/v1/limit-requests/editor", dto.OpenEditorRequest{Mode: "EDIT"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("requestId", s.decodeError(w).Field)
	s.limitEditor.AssertNotCalled(s.T(), "Open", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestEditorSubmit_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
	}{
		{"confirmation", apperrors.ErrConfirmationRequired, http.StatusPreconditionRequired, ""},
		{"validation", apperrors.NewValidationError("reason", "enter a reason"), http.StatusBadRequest, "reason"},
		{"in flight", apperrors.ErrSubmissionInProgress, http.StatusConflict, ""},
		{"backend down", &apperrors.BackendError{StatusCode: 503}, http.StatusBadGateway, ""},
		{"no editor", apperrors.ErrNotFound, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.limitEditor.On("Submit", mock.Anything, testUserID, mock.Anything).Return(nil, tt.err).Once()

			w := s.doJSON(http.MethodPost, "/api/v1/limit-requests/editor/submit", dto.ConfirmRequest{Confirm: true})
			s.Equal(tt.wantStatus, w.Code)
			s.Equal(tt.wantField, s.decodeError(w).Field)
		})
	}
}

func (s *HandlersTestSuite) TestEditorSubmit_PassesConfirmation() {
	s.limitEditor.On("Submit", mock.Anything, testUserID, confirmedWith(true)).
		Return(&domain.LimitRequest{ID: 11, Status: domain.StatusPending}, nil).Once()

	w := s.doJSON(http.MethodPost, "/api/v1/limit-requests/editor/submit", dto.ConfirmRequest{Confirm: true})
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.LimitRequestSubmittedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(11), resp.Request.ID)
}

func (s *HandlersTestSuite) TestSelectFile() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "payslip.pdf")
	s.Require().NoError(err)
	_, _ = part.Write([]byte("%PDF-1.4 test"))
	s.Require().NoError(mw.Close())

	s.limitEditor.On("SelectFile", mock.Anything, testUserID, domain.IncomeEvidence, "payslip.pdf", []byte("%PDF-1.4 test")).
		Return(&domain.EditorSnapshot{Mode: domain.ModeCreate}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/limit-requests/editor/files/income", &buf, mw.FormDataContentType())
	s.Equal(http.StatusOK, w.Code)
	s.limitEditor.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestSelectFile_UnknownSlot() {
	w := s.do(http.MethodPost, "/api/v1/limit-requests/editor/files/passport", strings.NewReader(""), "multipart/form-data")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCancelRequest() {
	s.limitEditor.On("CancelRequest", mock.Anything, testUserID, int64(9), confirmedWith(false)).
		Return(apperrors.ErrConfirmationRequired).Once()
	s.limitEditor.On("CancelRequest", mock.Anything, testUserID, int64(9), confirmedWith(true)).
		Return(nil).Once()

	w := s.doJSON(http.MethodDelete, "/api/v1/limit-requests/9", nil)
	s.Equal(http.StatusPreconditionRequired, w.Code)

	w = s.doJSON(http.MethodDelete, "/api/v1/limit-requests/9?confirm=true", nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.doJSON(http.MethodDelete, "/api/v1/limit-requests/abc?confirm=true", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.limitEditor.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestSubmitRemittance_LimitExceeded() {
	s.remittance.On("Submit", mock.Anything, testUserID, mock.MatchedBy(func(d domain.RemittanceDraft) bool {
		return d.Amount == 6000000
	}), confirmedWith(true)).Return(nil, &domain.LimitExceededError{Check: domain.LimitCheckResult{
		ExceededType:        domain.ExceededDaily,
		DailyLimit:          5000000,
		DailyExceededAmount: 1000000,
		RequestedAmount:     6000000,
	}}).Once()

	req := dto.SubmitRemittanceRequest{Confirm: true}
	req.Amount = "6,000,000"
	w := s.doJSON(http.MethodPost, "/api/v1/remittances", req)
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	resp := s.decodeError(w)
	s.Equal("DAILY", resp.ExceededType)
	s.Equal([]string{
		"Daily limit 5,000,000 KRW exceeded by 1,000,000 KRW",
		"Requested amount: 6,000,000 KRW",
	}, resp.Details)
}

func (s *HandlersTestSuite) TestSubmitRemittance_Created() {
	s.remittance.On("Submit", mock.Anything, testUserID, mock.Anything, confirmedWith(true)).
		Return(&portssvc.SubmitResult{
			Result:    domain.RemittanceResult{Success: true, ID: 5},
			Preview:   domain.NewPreview(100000, "USD", nil),
			NextDraft: domain.RemittanceDraft{SenderBank: "004"},
		}, nil).Once()

	req := dto.SubmitRemittanceRequest{Confirm: true}
	req.Amount = "100,000"
	w := s.doJSON(http.MethodPost, "/api/v1/remittances", req)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.SubmitRemittanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(5), resp.ID)
	s.Equal("Remittance completed", resp.Message)
	s.Equal("004", resp.NextDraft.SenderBank)
}

func (s *HandlersTestSuite) TestPreview_LimitUnavailable() {
	s.remittance.On("Preview", mock.Anything, testUserID, mock.Anything).
		Return(&portssvc.PreviewResult{Preview: domain.NewPreview(1000, "USD", nil)}, nil).Once()

	req := dto.RemittanceDraftRequest{Amount: "1000", Currency: "USD"}
	w := s.doJSON(http.MethodPost, "/api/v1/remittances/preview", req)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.PreviewResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(10), resp.Fee)
	s.True(resp.LimitUnavailable)
	s.Nil(resp.Limit)
}

func (s *HandlersTestSuite) TestListExchangeRates() {
	s.rates.On("ListRates", mock.Anything).Return([]domain.ExchangeRate{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("1350.5")},
	}, nil).Once()

	w := s.doJSON(http.MethodGet, "/api/v1/exchange-rates", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"USD"`)
}

func (s *HandlersTestSuite) TestGetBankAccount_None() {
	s.accounts.On("Get", mock.Anything, testUserID).Return(nil, nil).Once()

	w := s.doJSON(http.MethodGet, "/api/v1/bank-account", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"account":null}`, w.Body.String())
}

func (s *HandlersTestSuite) TestDownloadFile() {
	s.files.On("DownloadFile", mock.Anything, testUserID, int64(31)).
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil).Once()
	s.files.On("DownloadFile", mock.Anything, testUserID, int64(32)).
		Return(nil, "", &apperrors.BackendError{StatusCode: 404}).Once()

	w := s.doJSON(http.MethodGet, "/api/v1/files/31", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal("png-bytes", w.Body.String())

	w = s.doJSON(http.MethodGet, "/api/v1/files/32", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestAskQuestion_BackendValidationMessage() {
	q := domain.NewQuestion{Title: "Fees", Content: "How much?"}
	s.board.On("AskQuestion", mock.Anything, testUserID, q, confirmedWith(true)).
		Return(nil, &apperrors.BackendError{StatusCode: 400, Message: "title too short"}).Once()

	w := s.doJSON(http.MethodPost, "/api/v1/qna", dto.AskQuestionRequest{Title: "Fees", Content: "How much?", Confirm: true})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("title too short", s.decodeError(w).Error)
}
