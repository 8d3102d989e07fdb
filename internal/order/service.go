package order

import "time"

// DeliveryLeadTime is the fixed estimate quoted on every submission.
const DeliveryLeadTime = 7 * 24 * time.Hour

// Service synthesizes order records. Nothing is persisted: Submit has no
// side effects and History is always empty.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Submit builds the acknowledgement for a submission, echoing the total as
// sent. createdAt and the delivery estimate derive from the same instant.
func (s *Service) Submit(total float64, now time.Time) Order {
	now = now.UTC()
	return Order{
		ID:                "1",
		Status:            StatusSubmitted,
		Total:             total,
		EstimatedDelivery: now.Add(DeliveryLeadTime).Format(time.RFC3339),
		CreatedAt:         now.Format(time.RFC3339),
	}
}

// History returns the customer's past orders. With no order store this is
// always the empty list.
func (s *Service) History() []Order {
	return []Order{}
}
