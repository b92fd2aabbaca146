package dto

import (
	"github.com/SscSPs/remittance_web/internal/core/domain"
)

// LimitResponse is a limit snapshot with display-formatted amounts.
type LimitResponse struct {
	DailyLimit            int64            `json:"dailyLimit"`
	MonthlyLimit          int64            `json:"monthlyLimit"`
	SingleLimit           int64            `json:"singleLimit"`
	LimitType             domain.LimitType `json:"limitType"`
	DailyLimitFormatted   string           `json:"dailyLimitFormatted"`
	MonthlyLimitFormatted string           `json:"monthlyLimitFormatted"`
	SingleLimitFormatted  string           `json:"singleLimitFormatted"`
}

// LimitStateResponse is the Limit State Reader output plus its derived flags.
type LimitStateResponse struct {
	CurrentLimit      LimitResponse        `json:"currentLimit"`
	ActiveRequest     *domain.LimitRequest `json:"activeRequest"`
	ApprovedRequestID *int64               `json:"approvedRequestId"`
	IsFirstRequest    bool                 `json:"isFirstRequest"`
	CanRequest        bool                 `json:"canRequest"`
	CanReRequest      bool                 `json:"canReRequest"`
	CanViewDetail     bool                 `json:"canViewDetail"`
}

func ToLimitResponse(l domain.RemittanceLimit) LimitResponse {
	return LimitResponse{
		DailyLimit:            l.DailyLimit,
		MonthlyLimit:          l.MonthlyLimit,
		SingleLimit:           l.SingleLimit,
		LimitType:             l.LimitType,
		DailyLimitFormatted:   domain.FormatAmount(l.DailyLimit),
		MonthlyLimitFormatted: domain.FormatAmount(l.MonthlyLimit),
		SingleLimitFormatted:  domain.FormatAmount(l.SingleLimit),
	}
}

// ToLimitStateResponse converts a domain.LimitState to its API form.
func ToLimitStateResponse(s *domain.LimitState) LimitStateResponse {
	return LimitStateResponse{
		CurrentLimit:      ToLimitResponse(s.CurrentLimit),
		ActiveRequest:     s.ActiveRequest,
		ApprovedRequestID: s.ApprovedRequestID,
		IsFirstRequest:    s.IsFirstRequest(),
		CanRequest:        s.CanRequest(),
		CanReRequest:      s.CanReRequest(),
		CanViewDetail:     s.CanViewDetail(),
	}
}

// OpenEditorRequest opens the limit request editor.
type OpenEditorRequest struct {
	Mode      string `json:"mode" binding:"required"`
	RequestID int64  `json:"requestId"`
}

// UpdateEditorFieldsRequest sets text inputs; omitted fields stay as they are.
type UpdateEditorFieldsRequest struct {
	DailyLimit   *string `json:"dailyLimit"`
	MonthlyLimit *string `json:"monthlyLimit"`
	SingleLimit  *string `json:"singleLimit"`
	Reason       *string `json:"reason"`
}

func (r UpdateEditorFieldsRequest) ToDomain() domain.EditorFields {
	return domain.EditorFields{
		DailyLimit:   r.DailyLimit,
		MonthlyLimit: r.MonthlyLimit,
		SingleLimit:  r.SingleLimit,
		Reason:       r.Reason,
	}
}

// ConfirmRequest carries the user's answer to the confirmation prompt.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// LimitRequestSubmittedResponse is returned after the editor submits.
type LimitRequestSubmittedResponse struct {
	Request *domain.LimitRequest `json:"request"`
	Message string               `json:"message"`
}
