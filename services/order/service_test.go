package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakehouse/models"
	"bakehouse/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]*models.Order
	items  []models.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) InsertItems(_ context.Context, items []models.OrderItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	ord, ok := f.orders[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *ord
	return &cp, nil
}

func (f *fakeOrderRepo) GetItems(_ context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	for _, it := range f.items {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	ord, ok := f.orders[id]
	if !ok {
		return errors.New("not found")
	}
	ord.Status = status
	return nil
}

func (f *fakeOrderRepo) CountByScheduledDate(_ context.Context, date string) (int64, error) {
	var n int64
	for _, ord := range f.orders {
		if ord.ScheduledDate == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) ListByStatus(_ context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	for _, ord := range f.orders {
		if ord.Status == status {
			orders = append(orders, *ord)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Order, error) {
	var orders []models.Order
	for _, ord := range f.orders {
		if ord.CustomerID == customerID {
			orders = append(orders, *ord)
		}
	}
	return orders, nil
}

type fakePaymentRepo struct {
	payments  map[string]*models.Payment // keyed by order ID
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *payment
	f.payments[payment.OrderID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	p, ok := f.payments[orderID]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	p, ok := f.payments[orderID]
	if !ok {
		return errors.New("not found")
	}
	p.Status = status
	return nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error { return nil }
func (f *fakeProductRepo) Update(_ context.Context, p *models.Product) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, id string) error         { return nil }

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakeProductRepo) ListActive(_ context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListAll(_ context.Context) ([]models.Product, error)    { return nil, nil }

type fakeNotifier struct {
	operatorCalls []string
}

func (f *fakeNotifier) NotifyOperator(_ context.Context, title, body string, _ map[string]string) error {
	f.operatorCalls = append(f.operatorCalls, title)
	return nil
}

func (f *fakeNotifier) NotifyCustomer(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}

type fakeBlockedSource struct {
	blocks map[string][]models.BlockedInterval
}

func (f *fakeBlockedSource) GetByDate(_ context.Context, date string) ([]models.BlockedInterval, error) {
	return f.blocks[date], nil
}

// testNow pins "today" to 2025-01-01 for every service test.
func testNow() time.Time {
	return time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
}

func newTestService(blocks map[string][]models.BlockedInterval) (*DefaultOrderService, *fakeOrderRepo, *fakePaymentRepo, *fakeNotifier) {
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultOrderService{
		Orders:   orders,
		Payments: payments,
		Products: &fakeProductRepo{products: map[string]*models.Product{
			"choc": {ID: "choc", Name: "Chocolate Cake", Price: 35, Active: true},
		}},
		Eval: &availability.Evaluator{
			Blocked: &fakeBlockedSource{blocks: blocks},
			Orders:  orders,
			Now:     testNow,
		},
		Notifier: notifier,
	}
	return svc, orders, payments, notifier
}

func validInput() models.OrderInput {
	return models.OrderInput{
		ScheduledDate: "2025-01-15",
		ScheduledTime: "10:00",
		Items:         []models.OrderItemInput{{ProductID: "choc", Quantity: 2}},
		PaymentMethod: "cash",
	}
}

func TestCreateOrder(t *testing.T) {
	svc, orders, payments, _ := newTestService(nil)

	ord, err := svc.Create(context.Background(), "cust-1", validInput())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, ord.Status)
	assert.Equal(t, "2025-01-15", ord.ScheduledDate)
	assert.Equal(t, "10:00", ord.ScheduledTime)
	assert.Equal(t, 70.0, ord.Total)

	items, err := orders.GetItems(context.Background(), ord.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 35.0, items[0].UnitPrice)

	payment, err := payments.GetByOrderID(context.Background(), ord.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusUnpaid, payment.Status)
	assert.Equal(t, "cash", payment.Method)
}

func TestCreateRejectsTooSoonDate(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	input := validInput()
	input.ScheduledDate = "2025-01-07"
	_, err := svc.Create(context.Background(), "cust-1", input)

	var oe *OrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, CodeTooSoon, oe.Code)
}

func TestCreateRejectsBlockedTime(t *testing.T) {
	svc, _, _, _ := newTestService(map[string][]models.BlockedInterval{
		"2025-01-15": {{Date: "2025-01-15", StartTime: "09:00", EndTime: "11:00", Reason: "delivery run"}},
	})

	_, err := svc.Create(context.Background(), "cust-1", validInput())

	var oe *OrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, CodeTimeBlocked, oe.Code)
}

func TestCreateRejectsFullDay(t *testing.T) {
	svc, orders, _, _ := newTestService(nil)
	for i := 0; i < availability.DayCapacity; i++ {
		ord := &models.Order{ID: string(rune('a' + i)), ScheduledDate: "2025-01-15", Status: models.OrderStatusPending}
		require.NoError(t, orders.Create(context.Background(), ord))
	}

	_, err := svc.Create(context.Background(), "cust-1", validInput())

	var oe *OrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, CodeDayFull, oe.Code)
}

func TestCreateSurfacesPaymentWriteFailureButKeepsOrder(t *testing.T) {
	svc, orders, payments, _ := newTestService(nil)
	payments.createErr = errors.New("datastore down")

	_, err := svc.Create(context.Background(), "cust-1", validInput())
	require.Error(t, err)

	// No compensating rollback: the order and item rows stand.
	assert.Len(t, orders.orders, 1)
	assert.Len(t, orders.items, 1)
}

func TestCancelWithinWindow(t *testing.T) {
	svc, orders, _, notifier := newTestService(nil)
	ord := &models.Order{ID: "o1", CustomerID: "cust-1", ScheduledDate: "2025-01-06", Status: models.OrderStatusPending}
	require.NoError(t, orders.Create(context.Background(), ord))

	// Five days out: still cancellable.
	require.NoError(t, svc.Cancel(context.Background(), "o1", "cust-1"))

	got, err := orders.GetByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
	assert.Len(t, notifier.operatorCalls, 1)
}

func TestCancelWindowClosed(t *testing.T) {
	svc, orders, _, _ := newTestService(nil)
	ord := &models.Order{ID: "o1", CustomerID: "cust-1", ScheduledDate: "2025-01-05", Status: models.OrderStatusPending}
	require.NoError(t, orders.Create(context.Background(), ord))

	err := svc.Cancel(context.Background(), "o1", "cust-1")

	var oe *OrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, CodeCancelWindowClosed, oe.Code)
}

func TestCancelForeignOrderForbidden(t *testing.T) {
	svc, orders, _, _ := newTestService(nil)
	ord := &models.Order{ID: "o1", CustomerID: "cust-1", ScheduledDate: "2025-02-01", Status: models.OrderStatusPending}
	require.NoError(t, orders.Create(context.Background(), ord))

	err := svc.Cancel(context.Background(), "o1", "cust-2")

	var oe *OrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, CodeForbidden, oe.Code)
}
