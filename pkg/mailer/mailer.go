package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/printhaus/storefront-platform/internal/models"
)

// Mailer delivers transactional storefront mail. Delivery is best effort;
// callers must not fail an order because the confirmation did not send.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type sendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) Mailer {
	return &sendGridMailer{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (m *sendGridMailer) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(order.CustomerName, order.CustomerEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = fmt.Sprintf("Order confirmation %s", order.OrderNumber)
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", orderSummaryText(order)))

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

func orderSummaryText(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Thanks for your order %s. Here is what we received:\n\n", order.OrderNumber)

	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&b, "  %s x%d - %.2f\n", item.ProductName, item.Quantity, item.TotalPrice)

		for _, spec := range item.SelectedSpecs {
			fmt.Fprintf(&b, "    %s\n", spec)
		}
	}

	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "Delivery address: %s\n", order.DeliveryAddress)

	if order.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", order.Notes)
	}

	b.WriteString("\nWe will be in touch when your order moves to production.\n")

	return b.String()
}
