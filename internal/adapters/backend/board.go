package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

func (c *Client) ListNotices(ctx context.Context, page, size int) (*domain.NoticePage, error) {
	query := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	var result domain.NoticePage
	if err := c.doJSON(ctx, http.MethodGet, "/api/notices", query, nil, &result); err != nil {
		return nil, err
	}
	if result.Page == 0 {
		result.Page = page
	}
	if result.Size == 0 {
		result.Size = size
	}
	return &result, nil
}

func (c *Client) GetNotice(ctx context.Context, noticeID int64) (*domain.Notice, error) {
	var notice domain.Notice
	if err := c.doJSON(ctx, http.MethodGet, "/api/notices/"+strconv.FormatInt(noticeID, 10), nil, nil, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (c *Client) ListQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	var questions []domain.Question
	if err := c.doJSON(ctx, http.MethodGet, userPath(userID, "/qna"), nil, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) CreateQuestion(ctx context.Context, userID string, q domain.NewQuestion) (*domain.Question, error) {
	var created domain.Question
	if err := c.doJSON(ctx, http.MethodPost, userPath(userID, "/qna"), nil, q, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
