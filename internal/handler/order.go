package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emeraldbistro/table-service/internal/engine"
	"github.com/emeraldbistro/table-service/internal/model"
	"github.com/emeraldbistro/table-service/internal/queue"
	sync_publisher "github.com/emeraldbistro/table-service/internal/service"
)

// OrderHandler exposes the order lifecycle over HTTP: intake, kitchen
// views, readiness, revision and the bill.  All state lives in the
// engine; the handler only binds requests, maps engine errors to HTTP
// statuses and fires the best-effort external sync.
type OrderHandler struct {
	Engine *engine.Engine
}

// NewOrderHandler constructs an OrderHandler.  The engine must be non-nil.
func NewOrderHandler(eng *engine.Engine) *OrderHandler {
	if eng == nil {
		panic("nil engine passed to NewOrderHandler")
	}
	return &OrderHandler{Engine: eng}
}

// createOrderRequest is the JSON body of POST /v1/orders.
type createOrderRequest struct {
	Name          string            `json:"name"`
	Items         []model.OrderItem `json:"items"`
	People        int               `json:"people"`
	Note          string            `json:"note"`
	PaymentMethod string            `json:"payment_method"`
	Discount      float64           `json:"discount"`
	TaxRate       float64           `json:"tax_rate"`
}

// CreateOrder handles POST /v1/orders.  It validates the request
// through the engine, which either seats the party at the best-fitting
// free table, enqueues them when nothing fits, or skips seating
// entirely for a party size of zero.  On success a 201 response carries
// the order ID, assigned table (null while waiting), status and total,
// and an order.created snapshot is pushed to the sync queue outside the
// request path.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var body createOrderRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	order, err := h.Engine.CreateOrder(engine.CreateOrderRequest{
		CustomerName:  strings.TrimSpace(body.Name),
		Items:         body.Items,
		Note:          body.Note,
		People:        body.People,
		PaymentMethod: body.PaymentMethod,
		Discount:      body.Discount,
		TaxRate:       body.TaxRate,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	publishSync(queue.EventOrderCreated, order)
	return c.JSON(http.StatusCreated, echo.Map{
		"order_id":     order.ID,
		"table_number": order.TableNumber,
		"status":       order.Status,
		"total_amount": order.TotalAmount,
	})
}

// ListOrders handles GET /v1/orders.  The optional ?status query holds
// a comma-separated status subset; without it the kitchen view of
// orders currently being prepared is returned.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	statuses := []string{model.StatusPreparing}
	if raw := c.QueryParam("status"); raw != "" {
		statuses = statuses[:0]
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(strings.ToUpper(s)); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": h.Engine.Orders(statuses...),
	})
}

// MarkReady handles POST /v1/orders/:id/ready.  The kitchen signals
// that an order is ready to serve.  Unknown orders yield 404; orders
// not currently being prepared yield 409.
func (h *OrderHandler) MarkReady(c echo.Context) error {
	order, err := h.Engine.MarkReady(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, engine.ErrNotPreparing):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to mark order ready"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// reviseOrderRequest is the JSON body of PATCH /v1/orders/:id.  Nil
// fields leave the order untouched.
type reviseOrderRequest struct {
	Discount      *float64 `json:"discount"`
	PaymentMethod *string  `json:"payment_method"`
}

// ReviseOrder handles PATCH /v1/orders/:id.  Discount and payment
// method of an active order may change until checkout; the engine
// recomputes tax and total from the stored subtotal.  Completed orders
// are frozen and yield 409.
func (h *OrderHandler) ReviseOrder(c echo.Context) error {
	var body reviseOrderRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	order, err := h.Engine.ReviseOrder(c.Param("id"), body.Discount, body.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, engine.ErrOrderCompleted):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, engine.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to revise order"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": order})
}

// GetBill handles GET /v1/orders/:id/bill.  The active ledger is
// searched first, then the completed-order archive, so bills stay
// retrievable after checkout.
func (h *OrderHandler) GetBill(c echo.Context) error {
	order, ok := h.Engine.Bill(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": order})
}

// publishSync pushes an order snapshot to the sync queue in the
// background.  Failures are logged inside the publisher and never reach
// the caller: external reporting must not block or roll back a
// committed state transition.
func publishSync(event string, order model.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = sync_publisher.PublishOrderSync(ctx, queue.OrderSyncEvent{
			Event:      event,
			Order:      order,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()
}
