package notification

import (
	"context"
	"fmt"

	"bakehouse/config"
	customerRepo "bakehouse/database/repository/customer"
	"bakehouse/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes. Dispatch is
// fire-and-forget from the caller's perspective: a failed notification is
// never a booking failure.
type NotificationService interface {
	NotifyOperator(ctx context.Context, title, body string, data map[string]string) error
	NotifyCustomer(ctx context.Context, customerID, title, body string, data map[string]string) error
}

// FCMNotificationService is the production implementation.
type FCMNotificationService struct {
	Customers customerRepo.CustomerRepository
}

// NotifyOperator sends a push to the bakery operator device.
func (s *FCMNotificationService) NotifyOperator(ctx context.Context, title, body string, data map[string]string) error {
	token := config.AppConfig.OperatorFCMToken
	if token == "" {
		return fmt.Errorf("NotifyOperator: no operator FCM token configured")
	}
	return s.send(ctx, token, title, body, data)
}

// NotifyCustomer looks up a customer's FCM token and sends a push.
func (s *FCMNotificationService) NotifyCustomer(ctx context.Context, customerID, title, body string, data map[string]string) error {
	c, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("NotifyCustomer: could not find customer %s: %w", customerID, err)
	}
	if c.FCMToken == "" {
		return fmt.Errorf("NotifyCustomer: customer %s has no FCM token", customerID)
	}
	return s.send(ctx, c.FCMToken, title, body, data)
}

func (s *FCMNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: failed to send FCM message: %w", err)
	}
	return nil
}
