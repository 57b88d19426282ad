package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio-backend/internal/domains/contactform"
	"portfolio-backend/pkg/logger"
)

// relayService forwards submissions to a hosted form endpoint. The site
// never stores messages itself and never talks SMTP; delivery is entirely
// the provider's problem.
type relayService struct {
	httpClient *http.Client
	endpoint   string
	formID     string
}

// NewRelayService - Constructor
func NewRelayService(endpoint, formID string, timeout time.Duration) contactform.ServiceInterface {
	return &relayService{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		formID:     formID,
	}
}

func (s *relayService) Submit(ctx context.Context, req contactform.SubmitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("message", req.Message)
	if req.Phone != "" {
		form.Set("phone", req.Phone)
	}

	target := fmt.Sprintf("%s/f/%s", s.endpoint, s.formID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", contactform.ErrRelayFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", contactform.ErrRelayFailed, resp.StatusCode)
	}

	logger.Info("Contact form relayed", map[string]interface{}{
		"email": req.Email,
	})
	return nil
}
