package scrape

import (
	"errors"
	"time"

	"github.com/novelgrab/novelgrab"
)

// codeStatus maps application error codes to transport status codes.
var codeStatus = map[string]int{
	novelgrab.EINVALID:      400,
	novelgrab.EFORBIDDEN:    403,
	novelgrab.ENOTFOUND:     404,
	novelgrab.ETIMEOUT:      408,
	novelgrab.EEXTRACT:      422,
	novelgrab.ECONTAMINATED: 422,
	novelgrab.EUNAVAILABLE:  502,
	novelgrab.EINTERNAL:     500,
}

// codeLabel maps application error codes to short error labels.
var codeLabel = map[string]string{
	novelgrab.EINVALID:      "Invalid URL",
	novelgrab.EFORBIDDEN:    "Access forbidden",
	novelgrab.ENOTFOUND:     "Not found",
	novelgrab.ETIMEOUT:      "Request timeout",
	novelgrab.EEXTRACT:      "Content extraction failed",
	novelgrab.ECONTAMINATED: "Content contaminated",
	novelgrab.EUNAVAILABLE:  "Upstream server error",
	novelgrab.EINTERNAL:     "Internal server error",
}

// StatusCode returns the transport status code for an error.
func StatusCode(err error) int {
	if status, ok := codeStatus[novelgrab.ErrorCode(err)]; ok {
		return status
	}
	return 500
}

// ChapterPayload is the success data of a scrape response.
type ChapterPayload struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	WordCount   int       `json:"wordCount"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// MetaPayload carries scrape diagnostics in the success envelope.
type MetaPayload struct {
	Encoding         string `json:"encoding"`
	ProcessingTimeMS int64  `json:"processingTime"`
}

// Response is the external result envelope: either a success payload
// with data and meta, or a failure with status, label, and message.
type Response struct {
	Success bool            `json:"success"`
	Data    *ChapterPayload `json:"data,omitempty"`
	Meta    *MetaPayload    `json:"meta,omitempty"`

	Status  int                    `json:"status,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Message string                 `json:"message,omitempty"`
	Details *novelgrab.Diagnostics `json:"details,omitempty"`
}

// NewResponse builds the external envelope for a scrape outcome.
func NewResponse(chapter *novelgrab.Chapter, meta *novelgrab.Meta, err error) Response {
	if err != nil {
		resp := Response{
			Status:  StatusCode(err),
			Error:   errorLabel(err),
			Message: novelgrab.ErrorMessage(err),
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			diag := vErr.Diagnostics
			resp.Details = &diag
		}
		return resp
	}

	return Response{
		Success: true,
		Data: &ChapterPayload{
			Title:       chapter.Title,
			Content:     chapter.Content,
			URL:         chapter.URL,
			WordCount:   chapter.WordCount,
			ExtractedAt: chapter.ExtractedAt,
		},
		Meta: &MetaPayload{
			Encoding:         meta.Encoding,
			ProcessingTimeMS: meta.ProcessingTime.Milliseconds(),
		},
	}
}

func errorLabel(err error) string {
	if label, ok := codeLabel[novelgrab.ErrorCode(err)]; ok {
		return label
	}
	return "Internal server error"
}
