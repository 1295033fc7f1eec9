package engine

import (
	"errors"
	"testing"

	"github.com/emeraldbistro/table-service/internal/model"
)

func TestCreateOrderValidation(t *testing.T) {
	items := []model.OrderItem{{Name: "Iced Tea", Price: 2.5, Quantity: 1}}
	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr error
	}{
		{
			name:    "missing customer name",
			req:     CreateOrderRequest{Items: items},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty item list",
			req:     CreateOrderRequest{CustomerName: "Ana"},
			wantErr: ErrNoItems,
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{
				CustomerName: "Ana",
				Items:        []model.OrderItem{{Name: "Iced Tea", Price: 2.5, Quantity: 0}},
			},
			wantErr: ErrInvalidItem,
		},
		{
			name: "negative price",
			req: CreateOrderRequest{
				CustomerName: "Ana",
				Items:        []model.OrderItem{{Name: "Iced Tea", Price: -1, Quantity: 1}},
			},
			wantErr: ErrInvalidItem,
		},
		{
			name:    "negative tax rate",
			req:     CreateOrderRequest{CustomerName: "Ana", Items: items, TaxRate: -5},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative party size",
			req:     CreateOrderRequest{CustomerName: "Ana", Items: items, People: -2},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "valid order",
			req:  CreateOrderRequest{CustomerName: "Ana", Items: items, People: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine(model.TableDef{Number: 1, Capacity: 4})
			_, err := e.CreateOrder(tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CreateOrder: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			// Rejected requests must not mutate any state.
			if got := e.Statistics(); got.TotalOrders != 0 || got.WaitingParties != 0 || got.OccupiedTables != 0 {
				t.Fatalf("state mutated by rejected request: %+v", got)
			}
		})
	}
}

func TestMarkReadyTransitions(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})

	if _, err := e.MarkReady("EMD-0042"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("unknown order: err = %v, want %v", err, ErrOrderNotFound)
	}

	seated, _ := e.CreateOrder(seatingRequest("Ana", 2))
	ready, err := e.MarkReady(seated.ID)
	if err != nil {
		t.Fatalf("MarkReady: %v", err)
	}
	if ready.Status != model.StatusReady {
		t.Fatalf("status = %s, want %s", ready.Status, model.StatusReady)
	}
	if _, err := e.MarkReady(seated.ID); !errors.Is(err, ErrNotPreparing) {
		t.Fatalf("double ready: err = %v, want %v", err, ErrNotPreparing)
	}

	// A party still waiting for a table has no food being prepared.
	waiting, _ := e.CreateOrder(seatingRequest("Ben", 2))
	if waiting.Status != model.StatusWaiting {
		t.Fatalf("precondition: status = %s", waiting.Status)
	}
	if _, err := e.MarkReady(waiting.ID); !errors.Is(err, ErrNotPreparing) {
		t.Fatalf("waiting order: err = %v, want %v", err, ErrNotPreparing)
	}
}

func TestReviseOrderRecomputesTotals(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	order, err := e.CreateOrder(CreateOrderRequest{
		CustomerName: "Ana",
		Items: []model.OrderItem{
			{Name: "Beef Noodles", Price: 10, Quantity: 2},
			{Name: "Iced Tea", Price: 5, Quantity: 1},
		},
		TaxRate: 5,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.TotalAmount != 26.25 {
		t.Fatalf("initial total = %v, want 26.25", order.TotalAmount)
	}

	discount := 5.0
	revised, err := e.ReviseOrder(order.ID, &discount, nil)
	if err != nil {
		t.Fatalf("ReviseOrder: %v", err)
	}
	if revised.Discount != 5 || revised.TaxAmount != 1 || revised.TotalAmount != 21 {
		t.Fatalf("revised = %+v, want discount 5, tax 1, total 21", revised)
	}
	if revised.Subtotal != 25 || revised.TaxRate != 5 {
		t.Fatalf("revision touched stored inputs: %+v", revised)
	}
}

func TestReviseOrderPaymentMethodOnly(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	order, _ := e.CreateOrder(seatingRequest("Ana", 0))

	method := "card"
	revised, err := e.ReviseOrder(order.ID, nil, &method)
	if err != nil {
		t.Fatalf("ReviseOrder: %v", err)
	}
	if revised.PaymentMethod != "card" {
		t.Fatalf("payment method = %q, want card", revised.PaymentMethod)
	}
	if revised.TotalAmount != order.TotalAmount {
		t.Fatalf("total changed from %v to %v", order.TotalAmount, revised.TotalAmount)
	}
}

func TestReviseRejectedAfterCompletion(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	order, _ := e.CreateOrder(seatingRequest("Ana", 2))
	e.FreeTable(1)

	discount := 2.0
	if _, err := e.ReviseOrder(order.ID, &discount, nil); !errors.Is(err, ErrOrderCompleted) {
		t.Fatalf("err = %v, want %v", err, ErrOrderCompleted)
	}
	// The archived bill is untouched.
	bill, _ := e.Bill(order.ID)
	if bill.Discount != 0 {
		t.Fatalf("archived order mutated: %+v", bill)
	}
}

func TestReviseDiscountClampedToSubtotal(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	order, _ := e.CreateOrder(CreateOrderRequest{
		CustomerName: "Ana",
		Items:        []model.OrderItem{{Name: "Espresso", Price: 3, Quantity: 1}},
		TaxRate:      10,
	})
	discount := 50.0
	revised, err := e.ReviseOrder(order.ID, &discount, nil)
	if err != nil {
		t.Fatalf("ReviseOrder: %v", err)
	}
	if revised.Discount != 3 || revised.TaxAmount != 0 || revised.TotalAmount != 0 {
		t.Fatalf("clamp failed: %+v", revised)
	}
}

func TestBillLookup(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	active, _ := e.CreateOrder(seatingRequest("Ana", 2))

	if got, ok := e.Bill(active.ID); !ok || got.Status != model.StatusPreparing {
		t.Fatalf("active bill lookup: %+v ok=%v", got, ok)
	}
	if _, ok := e.Bill("EMD-9999"); ok {
		t.Fatal("unknown order should not resolve")
	}
}

func TestOrdersFilterByStatusSubset(t *testing.T) {
	e := testEngine(model.TableDef{Number: 1, Capacity: 2})
	seated, _ := e.CreateOrder(seatingRequest("Ana", 2))
	waiting, _ := e.CreateOrder(seatingRequest("Ben", 2))
	e.MarkReady(seated.ID)

	ready := e.Orders(model.StatusReady)
	if len(ready) != 1 || ready[0].ID != seated.ID {
		t.Fatalf("ready view = %+v", ready)
	}
	both := e.Orders(model.StatusReady, model.StatusWaiting)
	if len(both) != 2 || both[0].ID != seated.ID || both[1].ID != waiting.ID {
		t.Fatalf("combined view = %+v", both)
	}
	if got := e.Orders(model.StatusPreparing); len(got) != 0 {
		t.Fatalf("preparing view should be empty, got %+v", got)
	}
}
