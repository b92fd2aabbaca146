package domain

import "time"

// LimitType tells whether a user is on the system default ceiling or an approved personal one.
type LimitType string

const (
	DefaultLimit LimitType = "DEFAULT_LIMIT"
	UserLimit    LimitType = "USER_LIMIT"
)

// RemittanceLimit is the current effective limit snapshot for a user.
// Amounts are whole KRW. The backend is the authority; the snapshot is never mutated here.
type RemittanceLimit struct {
	DailyLimit   int64     `json:"dailyLimit"`
	MonthlyLimit int64     `json:"monthlyLimit"`
	SingleLimit  int64     `json:"singleLimit"`
	LimitType    LimitType `json:"limitType"`
}

// RequestStatus is the approval state of a LimitRequest.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// FileDescriptor describes an evidence file held by the backend.
type FileDescriptor struct {
	ID           int64  `json:"id"`
	OriginalName string `json:"originalName"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType"`
}

// LimitRequest is a single limit change request as returned by the backend.
type LimitRequest struct {
	ID           int64           `json:"id"`
	DailyLimit   int64           `json:"dailyLimit"`
	MonthlyLimit int64           `json:"monthlyLimit"`
	SingleLimit  int64           `json:"singleLimit"`
	Reason       string          `json:"reason"`
	Status       RequestStatus   `json:"status"`
	IncomeFile   *FileDescriptor `json:"incomeFile,omitempty"`
	BankbookFile *FileDescriptor `json:"bankbookFile,omitempty"`
	BusinessFile *FileDescriptor `json:"businessFile,omitempty"`
	AdminComment string          `json:"adminComment,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsActive reports whether the request still occupies the user's single active slot.
func (r LimitRequest) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusRejected
}

// File returns the descriptor held in the given evidence slot.
func (r LimitRequest) File(kind EvidenceKind) *FileDescriptor {
	switch kind {
	case IncomeEvidence:
		return r.IncomeFile
	case BankbookEvidence:
		return r.BankbookFile
	case BusinessEvidence:
		return r.BusinessFile
	}
	return nil
}

// LimitState is the Limit State Reader's view of a user.
type LimitState struct {
	CurrentLimit      RemittanceLimit `json:"currentLimit"`
	ActiveRequest     *LimitRequest   `json:"activeRequest"`
	ApprovedRequestID *int64          `json:"approvedRequestId"`
}

// NewLimitState selects the active and approved requests from the backend list.
// The first PENDING or REJECTED request in backend order wins; no recency sorting is applied.
func NewLimitState(limit RemittanceLimit, requests []LimitRequest) LimitState {
	state := LimitState{CurrentLimit: limit}
	for i := range requests {
		if requests[i].IsActive() {
			req := requests[i]
			state.ActiveRequest = &req
			break
		}
	}
	for i := range requests {
		if requests[i].Status == StatusApproved {
			id := requests[i].ID
			state.ApprovedRequestID = &id
			break
		}
	}
	return state
}

func (s LimitState) IsFirstRequest() bool {
	return s.CurrentLimit.LimitType == DefaultLimit
}

func (s LimitState) CanRequest() bool {
	return s.IsFirstRequest() && s.ActiveRequest == nil
}

func (s LimitState) CanReRequest() bool {
	return s.CurrentLimit.LimitType == UserLimit && s.ActiveRequest == nil
}

func (s LimitState) CanViewDetail() bool {
	return s.CurrentLimit.LimitType == UserLimit || s.ActiveRequest != nil
}

// CanEdit reports whether the active request may be edited in place under id.
func (s LimitState) CanEdit(id int64) bool {
	return s.ActiveRequest != nil && s.ActiveRequest.ID == id && s.ActiveRequest.Status == StatusRejected
}

// CanCancel reports whether the active request may be cancelled under id.
func (s LimitState) CanCancel(id int64) bool {
	return s.ActiveRequest != nil && s.ActiveRequest.ID == id && s.ActiveRequest.Status == StatusPending
}

// ClientState is the shared per-user state held in a StateStore.
type ClientState struct {
	Limit       *LimitState  `json:"limit,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
	LoadedAt    time.Time    `json:"loadedAt"`
}
