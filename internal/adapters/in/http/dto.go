package http

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	Address         string  `json:"address"`
	ImageRef        string  `json:"image_ref"`
	ItemPrice       float64 `json:"item_price"`
	Tax             float64 `json:"tax"`
	PaymentMode     string  `json:"payment_mode"`
	UPIHandle       string  `json:"upi_handle,omitempty"`
	PaymentProofRef string  `json:"payment_proof_ref,omitempty"`
}

// CreateOrderResponse is returned when an order is placed.
type CreateOrderResponse struct {
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
}

// DecisionRequest is the body of POST /api/v1/orders/:id/decision. Cursor
// and worker id echo the token the assignment offer carried.
type DecisionRequest struct {
	Cursor   int    `json:"cursor"`
	WorkerID string `json:"worker_id"`
	Decision string `json:"decision"`
}

// CompleteOrderRequest is the body of POST /api/v1/orders/:id/complete. The
// detail carries the fulfillment reference forwarded to the customer.
type CompleteOrderRequest struct {
	Detail string `json:"detail,omitempty"`
}

// RegisterWorkerRequest is the body of POST /api/v1/workers.
type RegisterWorkerRequest struct {
	WorkerID string `json:"worker_id"`
}

// SetAvailabilityRequest is the body of PUT /api/v1/workers/:id/availability.
type SetAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// Error is the JSON error envelope shared by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
