package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/gabriel-vasile/mimetype"
)

// EditorModeKind selects how a limit request is submitted.
type EditorModeKind string

const (
	ModeCreate    EditorModeKind = "CREATE"
	ModeEdit      EditorModeKind = "EDIT"
	ModeReRequest EditorModeKind = "RE_REQUEST"
)

// EditorMode is the tagged variant Create | Edit(requestID) | ReRequest.
type EditorMode struct {
	kind      EditorModeKind
	requestID int64
}

func CreateMode() EditorMode    { return EditorMode{kind: ModeCreate} }
func ReRequestMode() EditorMode { return EditorMode{kind: ModeReRequest} }

func EditMode(requestID int64) EditorMode {
	return EditorMode{kind: ModeEdit, requestID: requestID}
}

// ParseEditorMode builds a mode from its wire name. requestID is only read for EDIT.
func ParseEditorMode(kind string, requestID int64) (EditorMode, error) {
	switch EditorModeKind(strings.ToUpper(strings.TrimSpace(kind))) {
	case ModeCreate:
		return CreateMode(), nil
	case ModeReRequest:
		return ReRequestMode(), nil
	case ModeEdit:
		if requestID <= 0 {
			return EditorMode{}, apperrors.NewValidationError("requestId", "a request id is required to edit")
		}
		return EditMode(requestID), nil
	}
	return EditorMode{}, apperrors.NewValidationError("mode", fmt.Sprintf("unknown editor mode %q", kind))
}

func (m EditorMode) Kind() EditorModeKind { return m.kind }

// RequestID returns the edited request id and whether the mode is EDIT.
func (m EditorMode) RequestID() (int64, bool) {
	return m.requestID, m.kind == ModeEdit
}

// SendsFiles reports whether submissions in this mode carry evidence files.
func (m EditorMode) SendsFiles() bool {
	return m.kind != ModeReRequest
}

// EvidenceKind names one of the three evidence slots.
type EvidenceKind string

const (
	IncomeEvidence   EvidenceKind = "income"
	BankbookEvidence EvidenceKind = "bankbook"
	BusinessEvidence EvidenceKind = "business"
)

// EvidenceKinds lists the slots in validation order.
var EvidenceKinds = []EvidenceKind{IncomeEvidence, BankbookEvidence, BusinessEvidence}

// ParseEvidenceKind accepts a slot name like "income" or "incomeFile".
func ParseEvidenceKind(s string) (EvidenceKind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "file")
	for _, k := range EvidenceKinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", apperrors.NewValidationError("slot", fmt.Sprintf("unknown evidence slot %q", s))
}

// FieldName is the multipart field used for the slot.
func (k EvidenceKind) FieldName() string { return string(k) + "File" }

// RemoveFieldName is the multipart flag used to drop the slot's existing file on update.
func (k EvidenceKind) RemoveFieldName() string {
	return "remove" + strings.ToUpper(string(k[:1])) + string(k[1:]) + "File"
}

func (k EvidenceKind) label() string {
	switch k {
	case IncomeEvidence:
		return "proof of income"
	case BankbookEvidence:
		return "bankbook copy"
	case BusinessEvidence:
		return "business registration"
	}
	return string(k)
}

// MaxEvidenceSize is the largest accepted evidence file (10 MiB).
const MaxEvidenceSize = 10 << 20

var allowedEvidenceTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "application/pdf"}

var (
	ErrFileTooLarge     = errors.New("file exceeds 10MB")
	ErrFileTypeRejected = errors.New("only JPG, PNG, GIF or PDF files are allowed")
	ErrSlotOccupied     = errors.New("a file is already selected for this slot; remove it first")
)

// EvidenceUpload is a newly selected file that has not been sent yet.
type EvidenceUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewEvidenceUpload validates size and sniffed content type at selection time.
func NewEvidenceUpload(name string, data []byte) (*EvidenceUpload, error) {
	if len(data) > MaxEvidenceSize {
		return nil, ErrFileTooLarge
	}
	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowedEvidenceTypes...) {
		return nil, fmt.Errorf("%w (got %s)", ErrFileTypeRejected, detected.String())
	}
	return &EvidenceUpload{Name: name, ContentType: detected.String(), Data: data}, nil
}

// SlotState is the per-slot file state.
type SlotState string

const (
	SlotEmpty       SlotState = "EMPTY"
	SlotHasNew      SlotState = "HAS_NEW"
	SlotHasExisting SlotState = "HAS_EXISTING"
	SlotRemoved     SlotState = "REMOVED"
)

// FileSlot tracks one evidence slot: Empty -> HasNew | HasExisting -> Removed.
type FileSlot struct {
	state    SlotState
	upload   *EvidenceUpload
	existing *FileDescriptor
	// removedExisting survives a later upload so the update still drops the old file.
	removedExisting bool
}

func newFileSlot(existing *FileDescriptor) *FileSlot {
	if existing != nil {
		return &FileSlot{state: SlotHasExisting, existing: existing}
	}
	return &FileSlot{state: SlotEmpty}
}

func (s *FileSlot) State() SlotState          { return s.state }
func (s *FileSlot) Upload() *EvidenceUpload   { return s.upload }
func (s *FileSlot) Existing() *FileDescriptor { return s.existing }
func (s *FileSlot) RemovesExisting() bool     { return s.removedExisting }

func (s *FileSlot) occupied() bool {
	return s.state == SlotHasNew || s.state == SlotHasExisting
}

func (s *FileSlot) selectUpload(u *EvidenceUpload) error {
	if s.occupied() {
		return ErrSlotOccupied
	}
	s.upload = u
	s.state = SlotHasNew
	return nil
}

func (s *FileSlot) remove() {
	switch s.state {
	case SlotHasNew:
		s.upload = nil
		if s.removedExisting {
			s.state = SlotRemoved
		} else {
			s.state = SlotEmpty
		}
	case SlotHasExisting:
		s.removedExisting = true
		s.state = SlotRemoved
	}
}

// LimitRequestForm is the editor's local state for one request being written.
type LimitRequestForm struct {
	Mode         EditorMode
	DailyLimit   string
	MonthlyLimit string
	SingleLimit  string
	Reason       string
	slots        map[EvidenceKind]*FileSlot
}

// NewLimitRequestForm opens a form. In EDIT mode base is the rejected request being edited.
func NewLimitRequestForm(mode EditorMode, base *LimitRequest) *LimitRequestForm {
	f := &LimitRequestForm{Mode: mode, slots: make(map[EvidenceKind]*FileSlot, len(EvidenceKinds))}
	for _, k := range EvidenceKinds {
		var existing *FileDescriptor
		if base != nil && mode.Kind() == ModeEdit {
			existing = base.File(k)
		}
		f.slots[k] = newFileSlot(existing)
	}
	if base != nil && mode.Kind() == ModeEdit {
		f.DailyLimit = FormatAmount(base.DailyLimit)
		f.MonthlyLimit = FormatAmount(base.MonthlyLimit)
		f.SingleLimit = FormatAmount(base.SingleLimit)
		f.Reason = base.Reason
	}
	return f
}

// Slot returns the state of the given evidence slot.
func (f *LimitRequestForm) Slot(kind EvidenceKind) *FileSlot {
	return f.slots[kind]
}

// SelectFile places a validated upload into an empty or removed slot.
func (f *LimitRequestForm) SelectFile(kind EvidenceKind, u *EvidenceUpload) error {
	if !f.Mode.SendsFiles() {
		return fmt.Errorf("%w: re-requests do not take evidence files", apperrors.ErrConflict)
	}
	slot, ok := f.slots[kind]
	if !ok {
		return apperrors.NewValidationError("slot", fmt.Sprintf("unknown evidence slot %q", kind))
	}
	if err := slot.selectUpload(u); err != nil {
		return apperrors.NewValidationError(kind.FieldName(), err.Error())
	}
	return nil
}

// RemoveFile drops a new upload or marks the existing server file for removal.
func (f *LimitRequestForm) RemoveFile(kind EvidenceKind) error {
	slot, ok := f.slots[kind]
	if !ok {
		return apperrors.NewValidationError("slot", fmt.Sprintf("unknown evidence slot %q", kind))
	}
	slot.remove()
	return nil
}

// MinReasonLength is the minimum trimmed length of a justification.
const MinReasonLength = 10

// Validate runs the checks in order and stops at the first failure.
func (f *LimitRequestForm) Validate() (LimitRequestSubmission, error) {
	var sub LimitRequestSubmission
	var err error
	if sub.DailyLimit, err = parseLimitField("dailyLimit", "daily limit", f.DailyLimit); err != nil {
		return LimitRequestSubmission{}, err
	}
	if sub.MonthlyLimit, err = parseLimitField("monthlyLimit", "monthly limit", f.MonthlyLimit); err != nil {
		return LimitRequestSubmission{}, err
	}
	if sub.SingleLimit, err = parseLimitField("singleLimit", "single transaction limit", f.SingleLimit); err != nil {
		return LimitRequestSubmission{}, err
	}
	reason := strings.TrimSpace(f.Reason)
	if reason == "" {
		return LimitRequestSubmission{}, apperrors.NewValidationError("reason", "enter a reason for the request")
	}
	if utf8.RuneCountInString(reason) < MinReasonLength {
		return LimitRequestSubmission{}, apperrors.NewValidationError("reason",
			fmt.Sprintf("reason must be at least %d characters", MinReasonLength))
	}
	sub.Reason = reason

	if !f.Mode.SendsFiles() {
		return sub, nil
	}
	for _, k := range EvidenceKinds {
		if !f.slots[k].occupied() {
			return LimitRequestSubmission{}, apperrors.NewValidationError(k.FieldName(),
				fmt.Sprintf("attach a %s file", k.label()))
		}
	}
	sub.Files = make(map[EvidenceKind]*EvidenceUpload)
	for _, k := range EvidenceKinds {
		slot := f.slots[k]
		if slot.upload != nil {
			sub.Files[k] = slot.upload
		}
		if f.Mode.Kind() == ModeEdit && slot.removedExisting {
			if sub.RemoveExisting == nil {
				sub.RemoveExisting = make(map[EvidenceKind]bool)
			}
			sub.RemoveExisting[k] = true
		}
	}
	return sub, nil
}

func parseLimitField(field, label, raw string) (int64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("enter the %s", label))
	}
	v, err := ParseAmount(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("%s must be a whole number", label))
	}
	if v <= 0 {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("%s must be greater than zero", label))
	}
	return v, nil
}

// LimitRequestSubmission is the validated payload sent to the backend.
// Files and RemoveExisting are nil for re-requests.
type LimitRequestSubmission struct {
	DailyLimit     int64
	MonthlyLimit   int64
	SingleLimit    int64
	Reason         string
	Files          map[EvidenceKind]*EvidenceUpload
	RemoveExisting map[EvidenceKind]bool
}

// EditorFields carries the text inputs of the form. Nil fields are left unchanged.
type EditorFields struct {
	DailyLimit   *string
	MonthlyLimit *string
	SingleLimit  *string
	Reason       *string
}

// Apply copies the non-nil fields onto the form.
func (f *LimitRequestForm) Apply(fields EditorFields) {
	if fields.DailyLimit != nil {
		f.DailyLimit = *fields.DailyLimit
	}
	if fields.MonthlyLimit != nil {
		f.MonthlyLimit = *fields.MonthlyLimit
	}
	if fields.SingleLimit != nil {
		f.SingleLimit = *fields.SingleLimit
	}
	if fields.Reason != nil {
		f.Reason = *fields.Reason
	}
}

// SlotSnapshot is the read-only view of a FileSlot.
type SlotSnapshot struct {
	Kind            EvidenceKind    `json:"kind"`
	State           SlotState       `json:"state"`
	NewFileName     string          `json:"newFileName,omitempty"`
	NewFileSize     int64           `json:"newFileSize,omitempty"`
	NewFileType     string          `json:"newFileType,omitempty"`
	Existing        *FileDescriptor `json:"existing,omitempty"`
	RemovesExisting bool            `json:"removesExisting"`
}

// EditorSnapshot is the read-only view of an open editor.
type EditorSnapshot struct {
	Mode         EditorModeKind `json:"mode"`
	RequestID    *int64         `json:"requestId,omitempty"`
	DailyLimit   string         `json:"dailyLimit"`
	MonthlyLimit string         `json:"monthlyLimit"`
	SingleLimit  string         `json:"singleLimit"`
	Reason       string         `json:"reason"`
	Slots        []SlotSnapshot `json:"slots"`
}

// Snapshot copies the form into an EditorSnapshot. Re-request snapshots carry no slots.
func (f *LimitRequestForm) Snapshot() EditorSnapshot {
	snap := EditorSnapshot{
		Mode:         f.Mode.Kind(),
		DailyLimit:   f.DailyLimit,
		MonthlyLimit: f.MonthlyLimit,
		SingleLimit:  f.SingleLimit,
		Reason:       f.Reason,
		Slots:        []SlotSnapshot{},
	}
	if id, ok := f.Mode.RequestID(); ok {
		snap.RequestID = &id
	}
	if !f.Mode.SendsFiles() {
		return snap
	}
	for _, k := range EvidenceKinds {
		slot := f.slots[k]
		s := SlotSnapshot{Kind: k, State: slot.state, RemovesExisting: slot.removedExisting}
		if slot.state == SlotHasExisting {
			s.Existing = slot.existing
		}
		if slot.upload != nil {
			s.NewFileName = slot.upload.Name
			s.NewFileSize = int64(len(slot.upload.Data))
			s.NewFileType = slot.upload.ContentType
		}
		snap.Slots = append(snap.Slots, s)
	}
	return snap
}
