package grpcsvc_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/cardapio/internal/auth"
	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/service/ordering"
	"github.com/vladislavdragonenkov/cardapio/internal/service/outbox"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
	"github.com/vladislavdragonenkov/cardapio/internal/service/storeconfig"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"

	adminv1 "github.com/vladislavdragonenkov/cardapio/proto/cardapio/admin/v1"

	grpcsvc "github.com/vladislavdragonenkov/cardapio/internal/service/grpc"
)

const bufSize = 1024 * 1024

type testEnv struct {
	client adminv1.AdminServiceClient
	orders domain.OrderRepository
	config domain.ConfigRepository
	gate   *auth.Gate
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	logger := loggerForTests()
	m := metrics.NewShopMetricsWith(prometheus.NewRegistry())
	orders := memory.NewOrderRepository()
	config := memory.NewConfigRepository()
	events := outbox.NewEmitter(memory.NewOutboxRepository(), m, logger)

	creds, err := auth.NewCredentials("admin", "admin123", "")
	require.NoError(t, err)
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	gate := auth.NewGate(creds, tokens, true)

	service := grpcsvc.NewAdminService(
		ordering.NewService(orders, memory.NewCartRepository(), config, events, m, logger),
		storeconfig.NewService(config, events, m, logger),
		reporting.NewService(orders, time.UTC),
		logger,
	)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer(grpc.UnaryInterceptor(grpcsvc.AuthInterceptor(gate)))
	grpcsvc.Register(server, service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return &testEnv{client: adminv1.NewAdminServiceClient(conn), orders: orders, config: config, gate: gate}
}

func (e *testEnv) authCtx(t *testing.T) context.Context {
	t.Helper()
	token, err := e.gate.Login("admin", "admin123")
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token.AccessToken)
}

func (e *testEnv) seedOrder(t *testing.T, id string, createdAt time.Time, method domain.PaymentMethod, prices ...int64) {
	t.Helper()
	items := make([]domain.OrderItem, 0, len(prices))
	for _, p := range prices {
		items = append(items, domain.OrderItem{Name: "Bacon Duplo", Price: decimal.NewFromInt(p)})
	}
	require.NoError(t, e.orders.Create(context.Background(), domain.Order{
		ID:            id,
		CustomerName:  "Ana",
		Address:       "Rua A, 10",
		PaymentMethod: method,
		Items:         items,
		ItemsText:     domain.FormatItemsText(items),
		Total:         domain.SumItems(items),
		Status:        domain.OrderStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}))
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func TestAdminService_RequiresToken(t *testing.T) {
	env := newTestServer(t)

	_, err := env.client.ListOrders(context.Background(), &adminv1.ListOrdersRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	badCtx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = env.client.ListOrders(badCtx, &adminv1.ListOrdersRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAdminService_OrderLifecycle(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)
	now := time.Now().UTC()
	env.seedOrder(t, "order-1", now.Add(-time.Minute), domain.PaymentPix, 18)
	env.seedOrder(t, "order-2", now, domain.PaymentCash, 20, 5)

	list, err := env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetOrders(), 2)
	newest := list.GetOrders()[0]
	assert.Equal(t, "order-2", newest.GetId())
	assert.Equal(t, "25.00", newest.GetTotal())
	assert.Equal(t, adminv1.PaymentMethod_PAYMENT_METHOD_CASH, newest.GetPaymentMethod())
	assert.Equal(t, adminv1.OrderStatus_ORDER_STATUS_PENDING, newest.GetStatus())
	require.Len(t, newest.GetItems(), 2)
	assert.Equal(t, "5.00", newest.GetItems()[1].GetPrice())

	delivered, err := env.client.MarkDelivered(ctx, &adminv1.MarkDeliveredRequest{OrderId: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, adminv1.OrderStatus_ORDER_STATUS_DELIVERED, delivered.GetOrder().GetStatus())

	list, err = env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{Status: adminv1.OrderStatus_ORDER_STATUS_PENDING})
	require.NoError(t, err)
	require.Len(t, list.GetOrders(), 1)

	removed, err := env.client.RemoveOrder(ctx, &adminv1.RemoveOrderRequest{OrderId: "order-2"})
	require.NoError(t, err)
	assert.Equal(t, "order-2", removed.GetOrderId())

	_, err = env.client.RemoveOrder(ctx, &adminv1.RemoveOrderRequest{OrderId: "order-2"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.MarkDelivered(ctx, &adminv1.MarkDeliveredRequest{OrderId: " "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAdminService_ListOrdersValidation(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)

	for name, req := range map[string]*adminv1.ListOrdersRequest{
		"status": {Status: adminv1.OrderStatus(42)},
		"since":  {SinceUnix: -1},
		"limit":  {Limit: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.client.ListOrders(ctx, req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestAdminService_ListOrdersSince(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	env.seedOrder(t, "old", base, domain.PaymentPix, 10)
	env.seedOrder(t, "new", base.Add(time.Hour), domain.PaymentPix, 10)

	list, err := env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{SinceUnix: base.Unix()})
	require.NoError(t, err)
	require.Len(t, list.GetOrders(), 1)
	assert.Equal(t, "new", list.GetOrders()[0].GetId())
	assert.Equal(t, base.Add(time.Hour).Unix(), list.GetOrders()[0].GetCreatedAtUnix())
}

func TestAdminService_ListOrdersCapsLimit(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 520; i++ {
		env.seedOrder(t, fmt.Sprintf("order-%03d", i), base.Add(time.Duration(i)*time.Second), domain.PaymentPix, 10)
	}

	list, err := env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, list.GetOrders(), 500)
	assert.Equal(t, "order-519", list.GetOrders()[0].GetId())

	list, err = env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{})
	require.NoError(t, err)
	assert.Len(t, list.GetOrders(), 100)

	list, err = env.client.ListOrders(ctx, &adminv1.ListOrdersRequest{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, list.GetOrders(), 3)
}

func TestAdminService_SetStoreOpen(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)

	out, err := env.client.SetStoreOpen(ctx, &adminv1.SetStoreOpenRequest{Open: false})
	require.NoError(t, err)
	assert.False(t, out.GetSettings().GetOpen())

	cfg, err := env.config.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.Open)
}

func TestAdminService_GetReport(t *testing.T) {
	env := newTestServer(t)
	ctx := env.authCtx(t)
	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	env.seedOrder(t, "a", day, domain.PaymentPix, 18, 20)
	env.seedOrder(t, "b", day.Add(24*time.Hour), domain.PaymentCash, 20)
	env.seedOrder(t, "outside", day.Add(72*time.Hour), domain.PaymentCash, 99)

	out, err := env.client.GetReport(ctx, &adminv1.GetReportRequest{From: "2024-05-10", To: "2024-05-11"})
	require.NoError(t, err)

	report := out.GetReport()
	assert.Equal(t, "2024-05-10", report.GetFrom())
	assert.Equal(t, "2024-05-11", report.GetTo())
	assert.Equal(t, int64(2), report.GetOrdersCount())
	assert.Equal(t, "58.00", report.GetTotal())
	assert.Len(t, report.GetSalesByDay(), 2)

	require.Len(t, report.GetTopProducts(), 1)
	assert.Equal(t, int64(3), report.GetTopProducts()[0].GetCount())

	require.Len(t, report.GetRevenueByPaymentMethod(), 2)
	assert.Equal(t, adminv1.PaymentMethod_PAYMENT_METHOD_PIX, report.GetRevenueByPaymentMethod()[0].GetMethod())
	assert.Equal(t, "38.00", report.GetRevenueByPaymentMethod()[0].GetTotal())

	_, err = env.client.GetReport(ctx, &adminv1.GetReportRequest{From: "10/05/2024"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
