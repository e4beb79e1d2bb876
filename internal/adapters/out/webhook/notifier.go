// Package webhook delivers engine notifications over HTTP. Workers and
// customers subscribe through an external gateway; the notifier posts JSON
// events to it and maps the gateway's response onto the Notifier contract.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Notifier implements ports.Notifier by posting events to a webhook gateway.
//
// A 404 or 410 response means the recipient is gone for good and is reported
// as ports.ErrPermanentDelivery; every other failure is transient and the
// engine's escalation timer covers it.
type Notifier struct {
	client  *http.Client
	baseURL string
}

// NewNotifier creates a webhook notifier posting to the given base URL.
func NewNotifier(baseURL string) (*Notifier, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Notifier{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: baseURL,
	}, nil
}

type assignmentEvent struct {
	WorkerID string          `json:"worker_id"`
	Order    orderEvent      `json:"order"`
	Token    tokenEvent      `json:"token"`
}

type orderEvent struct {
	OrderID         int64   `json:"order_id"`
	CustomerName    string  `json:"customer_name"`
	Address         string  `json:"address"`
	ImageRef        string  `json:"image_ref"`
	Total           float64 `json:"total"`
	PaymentMode     string  `json:"payment_mode"`
	UPIHandle       string  `json:"upi_handle,omitempty"`
	PaymentProofRef string  `json:"payment_proof_ref,omitempty"`
}

type tokenEvent struct {
	OrderID  int64  `json:"order_id"`
	Cursor   int    `json:"cursor"`
	WorkerID string `json:"worker_id"`
}

type outcomeEvent struct {
	CustomerID string `json:"customer_id"`
	OrderID    int64  `json:"order_id"`
	Outcome    string `json:"outcome"`
	Detail     string `json:"detail,omitempty"`
}

// NotifyAssignment posts an assignment offer to the gateway.
func (n *Notifier) NotifyAssignment(
	ctx context.Context,
	workerID worker.ID,
	snapshot ports.OrderSnapshot,
	token ports.DecisionToken,
) error {
	event := assignmentEvent{
		WorkerID: string(workerID),
		Order: orderEvent{
			OrderID:         snapshot.ID,
			CustomerName:    snapshot.CustomerName,
			Address:         snapshot.Address,
			ImageRef:        snapshot.ImageRef,
			Total:           snapshot.Total,
			PaymentMode:     snapshot.PaymentMode.String(),
			UPIHandle:       snapshot.UPIHandle,
			PaymentProofRef: snapshot.PaymentProofRef,
		},
		Token: tokenEvent{
			OrderID:  token.OrderID,
			Cursor:   token.Cursor,
			WorkerID: string(token.WorkerID),
		},
	}

	return n.post(ctx, "/assignments", event)
}

// NotifyOutcome posts a customer-facing order event to the gateway.
func (n *Notifier) NotifyOutcome(
	ctx context.Context,
	customerID kernel.UUID,
	orderID int64,
	outcome ports.Outcome,
	detail string,
) error {
	event := outcomeEvent{
		CustomerID: customerID.String(),
		OrderID:    orderID,
		Outcome:    outcome.String(),
		Detail:     detail,
	}

	return n.post(ctx, "/outcomes", event)
}

func (n *Notifier) post(ctx context.Context, path string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: gateway returned %d for %s", ports.ErrPermanentDelivery, resp.StatusCode, path)
	default:
		return fmt.Errorf("webhook %s failed with status %d", path, resp.StatusCode)
	}
}
