package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
)

const (
	defaultNoticePageSize = 10
	maxNoticePageSize     = 50
)

type boardService struct {
	BaseService
	backend ports.BoardBackend
}

func NewBoardService(backend ports.BoardBackend) portssvc.BoardSvc {
	return &boardService{backend: backend}
}

func (s *boardService) ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultNoticePageSize
	}
	if size > maxNoticePageSize {
		size = maxNoticePageSize
	}
	notices, err := s.backend.ListNotices(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

func (s *boardService) GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error) {
	notice, err := s.backend.GetNotice(ctx, noticeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notice %d: %w", noticeID, err)
	}
	return notice, nil
}

func (s *boardService) ListQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	questions, err := s.backend.ListQuestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *boardService) AskQuestion(ctx context.Context, userID string, q domain.NewQuestion, confirm portssvc.Confirmer) (*domain.Question, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if confirm == nil || !confirm(ctx, "Submit question: "+q.Title) {
		return nil, apperrors.ErrConfirmationRequired
	}
	created, err := s.backend.CreateQuestion(ctx, userID, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to create question")
		return nil, fmt.Errorf("failed to submit question: %w", err)
	}
	return created, nil
}
