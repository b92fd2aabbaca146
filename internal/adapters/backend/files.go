package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DownloadFile streams an evidence file. The caller must close the returned body.
func (c *Client) DownloadFile(ctx context.Context, userID string, fileID int64) (io.ReadCloser, string, error) {
	query := url.Values{"userId": []string{userID}}
	req, err := c.newRequest(ctx, http.MethodGet, "/api/files/"+strconv.FormatInt(fileID, 10), query, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "*/*")
	resp, err := c.do(req)
	if err != nil {
		return nil, "", err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return resp.Body, contentType, nil
}
