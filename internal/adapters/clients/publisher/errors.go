package publisher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/domain"
)

const maxErrorBodySize = 64 << 10

// problem is the subset of an RFC 9457 body the mirror may send back.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// translateStatus maps a rejected publish onto the domain's error sentinels.
func translateStatus(resp *http.Response) error {
	detail := readProblem(resp).Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("board not found: %s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("snapshot rejected: %s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func readProblem(resp *http.Response) problem {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problem{}
	}

	var p problem
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}
