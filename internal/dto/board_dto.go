package dto

import "github.com/SscSPs/remittance_web/internal/core/domain"

// ListNoticesParams are the paging query parameters for notices.
type ListNoticesParams struct {
	Page int `form:"page,default=1" binding:"min=1"`
	Size int `form:"size,default=10" binding:"min=1,max=50"`
}

// AskQuestionRequest posts a new Q&A entry.
type AskQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Confirm bool   `json:"confirm"`
}

func (r AskQuestionRequest) ToDomain() domain.NewQuestion {
	return domain.NewQuestion{Title: r.Title, Content: r.Content}
}

// ListQuestionsResponse wraps the user's questions.
type ListQuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}
