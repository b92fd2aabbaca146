package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/SscSPs/remittance_web/internal/core/domain"
)

func (c *Client) FetchLimit(ctx context.Context, userID string) (*domain.RemittanceLimit, error) {
	var limit domain.RemittanceLimit
	if err := c.doJSON(ctx, http.MethodGet, userPath(userID, "/remittance-limit"), nil, nil, &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}

func (c *Client) ListLimitRequests(ctx context.Context, userID string) ([]domain.LimitRequest, error) {
	var requests []domain.LimitRequest
	if err := c.doJSON(ctx, http.MethodGet, userPath(userID, "/remittance-limit/requests"), nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) CreateLimitRequest(ctx context.Context, userID string, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error) {
	return c.sendLimitRequest(ctx, http.MethodPost, userPath(userID, "/remittance-limit/requests"), sub)
}

func (c *Client) UpdateLimitRequest(ctx context.Context, userID string, requestID int64, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error) {
	path := userPath(userID, "/remittance-limit/requests/"+strconv.FormatInt(requestID, 10))
	return c.sendLimitRequest(ctx, http.MethodPut, path, sub)
}

func (c *Client) CancelLimitRequest(ctx context.Context, userID string, requestID int64) error {
	path := userPath(userID, "/remittance-limit/requests/"+strconv.FormatInt(requestID, 10))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) sendLimitRequest(ctx context.Context, method, path string, sub domain.LimitRequestSubmission) (*domain.LimitRequest, error) {
	body, contentType, err := encodeLimitRequest(sub)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var created domain.LimitRequest
	if err := c.send(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// encodeLimitRequest writes the multipart form. File parts and remove flags are only
// written when present, so a re-request never carries file fields.
func encodeLimitRequest(sub domain.LimitRequestSubmission) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct{ name, value string }{
		{"dailyLimit", strconv.FormatInt(sub.DailyLimit, 10)},
		{"monthlyLimit", strconv.FormatInt(sub.MonthlyLimit, 10)},
		{"singleLimit", strconv.FormatInt(sub.SingleLimit, 10)},
		{"reason", sub.Reason},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	for _, kind := range domain.EvidenceKinds {
		if sub.RemoveExisting[kind] {
			if err := w.WriteField(kind.RemoveFieldName(), "true"); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", kind.RemoveFieldName(), err)
			}
		}
		upload := sub.Files[kind]
		if upload == nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, kind.FieldName(), upload.Name))
		h.Set("Content-Type", upload.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %s: %w", kind.FieldName(), err)
		}
		if _, err := part.Write(upload.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write part %s: %w", kind.FieldName(), err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
