package partner

import (
	"context"
	"fmt"

	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/internal/observability/metrics"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Service wraps the request repository with notices and metrics.
type Service struct {
	repo    Repository
	notices *notify.Center
	metrics *metrics.AppMetrics
	logger  *logging.Logger
}

// NewService creates a partner request service.
func NewService(repo Repository, notices *notify.Center, m *metrics.AppMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, notices: notices, metrics: m, logger: logger}
}

// Pending lists the session's pending booking requests.
func (s *Service) Pending(ctx context.Context, sessionID string) ([]BookingRequest, error) {
	return s.repo.Pending(ctx, sessionID)
}

// Accepted lists the session's accepted bookings.
func (s *Service) Accepted(ctx context.Context, sessionID string) ([]BookingRequest, error) {
	return s.repo.Accepted(ctx, sessionID)
}

// Accept moves a pending request to the accepted list.
func (s *Service) Accept(ctx context.Context, sessionID string, id int) (BookingRequest, error) {
	req, err := s.repo.Accept(ctx, sessionID, id)
	if err != nil {
		return BookingRequest{}, fmt.Errorf("partner: accept request %d: %w", id, err)
	}

	s.logger.Info("booking request accepted", "session_id", sessionID, "request_id", id, "service", req.Service)
	s.metrics.ObservePartnerAction("accept")
	if s.notices != nil {
		s.notices.Success(sessionID, "Booking request accepted!")
	}
	return req, nil
}

// Decline removes a pending request.
func (s *Service) Decline(ctx context.Context, sessionID string, id int) (BookingRequest, error) {
	req, err := s.repo.Decline(ctx, sessionID, id)
	if err != nil {
		return BookingRequest{}, fmt.Errorf("partner: decline request %d: %w", id, err)
	}

	s.logger.Info("booking request declined", "session_id", sessionID, "request_id", id, "service", req.Service)
	s.metrics.ObservePartnerAction("decline")
	if s.notices != nil {
		s.notices.Info(sessionID, "Booking request declined.")
	}
	return req, nil
}
