package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
)

// Notice is an announcement published by administrators.
type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	ViewCount int64     `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoticePage is one page of notices.
type NoticePage struct {
	Items      []Notice `json:"items"`
	Page       int      `json:"page"`
	Size       int      `json:"size"`
	TotalItems int64    `json:"totalItems"`
}

// QuestionStatus tells whether an administrator has answered a question.
type QuestionStatus string

const (
	QuestionWaiting  QuestionStatus = "WAITING"
	QuestionAnswered QuestionStatus = "ANSWERED"
)

// Question is a Q&A entry submitted by a user.
type Question struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Status     QuestionStatus `json:"status"`
	Answer     string         `json:"answer,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	AnsweredAt *time.Time     `json:"answeredAt,omitempty"`
}

// NewQuestion is what a user submits.
type NewQuestion struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (q NewQuestion) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return apperrors.NewValidationError("title", "enter a title")
	}
	if strings.TrimSpace(q.Content) == "" {
		return apperrors.NewValidationError("content", "enter the question")
	}
	return nil
}
