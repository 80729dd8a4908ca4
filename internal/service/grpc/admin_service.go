// Package grpcsvc реализует adminv1.AdminService поверх сервисов приложения:
// заказы, отчёт и открытие магазина.
package grpcsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/cardapio/internal/auth"
	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/service/ordering"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
	"github.com/vladislavdragonenkov/cardapio/internal/service/storeconfig"
	adminv1 "github.com/vladislavdragonenkov/cardapio/proto/cardapio/admin/v1"
)

const (
	defaultListOrdersLimit = 100
	// maxListOrdersLimit совпадает с потолком HTTP-списка заказов.
	maxListOrdersLimit = 500
)

// AdminService реализует административные методы поверх сервисов приложения.
type AdminService struct {
	adminv1.UnimplementedAdminServiceServer

	orders  *ordering.Service
	store   *storeconfig.Service
	reports *reporting.Service
	logger  *log.Entry
}

// NewAdminService конструирует сервис с зависимостями.
func NewAdminService(
	orders *ordering.Service,
	store *storeconfig.Service,
	reports *reporting.Service,
	logger *log.Entry,
) *AdminService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-admin")
	}
	return &AdminService{orders: orders, store: store, reports: reports, logger: logger}
}

// Register регистрирует сервис на gRPC-сервере.
func Register(server grpc.ServiceRegistrar, svc *AdminService) {
	adminv1.RegisterAdminServiceServer(server, svc)
}

// ListOrders возвращает заказы, новые первыми. limit=0 означает лимит по умолчанию,
// значения больше maxListOrdersLimit урезаются.
func (s *AdminService) ListOrders(ctx context.Context, req *adminv1.ListOrdersRequest) (*adminv1.ListOrdersResponse, error) {
	filter := domain.OrderFilter{Limit: defaultListOrdersLimit}

	switch req.GetStatus() {
	case adminv1.OrderStatus_ORDER_STATUS_UNSPECIFIED:
	case adminv1.OrderStatus_ORDER_STATUS_PENDING:
		filter.Status = domain.OrderStatusPending
	case adminv1.OrderStatus_ORDER_STATUS_DELIVERED:
		filter.Status = domain.OrderStatusDelivered
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown order status %d", req.GetStatus())
	}

	if since := req.GetSinceUnix(); since < 0 {
		return nil, status.Error(codes.InvalidArgument, "since_unix must not be negative")
	} else if since > 0 {
		filter.Since = time.Unix(since, 0).UTC()
	}

	switch limit := int(req.GetLimit()); {
	case limit < 0:
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	case limit > maxListOrdersLimit:
		filter.Limit = maxListOrdersLimit
	case limit > 0:
		filter.Limit = limit
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, s.toStatus(err, "list orders")
	}

	out := make([]*adminv1.Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, toProtoOrder(order))
	}
	return &adminv1.ListOrdersResponse{Orders: out}, nil
}

// MarkDelivered переводит заказ в delivered; повторный вызов ничего не меняет.
func (s *AdminService) MarkDelivered(ctx context.Context, req *adminv1.MarkDeliveredRequest) (*adminv1.MarkDeliveredResponse, error) {
	id := strings.TrimSpace(req.GetOrderId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	order, err := s.orders.MarkDelivered(ctx, id)
	if err != nil {
		return nil, s.toStatus(err, "mark delivered")
	}
	return &adminv1.MarkDeliveredResponse{Order: toProtoOrder(order)}, nil
}

func (s *AdminService) RemoveOrder(ctx context.Context, req *adminv1.RemoveOrderRequest) (*adminv1.RemoveOrderResponse, error) {
	id := strings.TrimSpace(req.GetOrderId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if err := s.orders.Remove(ctx, id); err != nil {
		return nil, s.toStatus(err, "remove order")
	}
	return &adminv1.RemoveOrderResponse{OrderId: id}, nil
}

func (s *AdminService) SetStoreOpen(ctx context.Context, req *adminv1.SetStoreOpenRequest) (*adminv1.SetStoreOpenResponse, error) {
	cfg, err := s.store.SetOpen(ctx, req.GetOpen())
	if err != nil {
		return nil, s.toStatus(err, "set store open")
	}
	return &adminv1.SetStoreOpenResponse{Settings: &adminv1.StoreSettings{
		Open:          cfg.Open,
		ContactNumber: cfg.ContactNumber,
		Theme:         string(cfg.Theme),
	}}, nil
}

// GetReport строит отчёт за from..to (2006-01-02, включительно). Пустая граница не ограничивает.
func (s *AdminService) GetReport(ctx context.Context, req *adminv1.GetReportRequest) (*adminv1.GetReportResponse, error) {
	r, err := reporting.ParseDateRange(req.GetFrom(), req.GetTo(), s.reports.Location())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	report, err := s.reports.Build(ctx, r)
	if err != nil {
		return nil, s.toStatus(err, "build report")
	}
	return &adminv1.GetReportResponse{Report: toProtoReport(report)}, nil
}

func (s *AdminService) toStatus(err error, operation string) error {
	switch {
	case domain.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrStoreClosed),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidCategoryOperation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case domain.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.WithError(err).WithField("operation", operation).Error("admin rpc failed")
		return status.Error(codes.Internal, operation+" failed")
	}
}

// AuthInterceptor пропускает вызовы AdminService только с валидным токеном
// в metadata authorization. Остальные сервисы (health, reflection) не проверяются.
func AuthInterceptor(gate *auth.Gate) grpc.UnaryServerInterceptor {
	prefix := "/" + adminv1.AdminService_ServiceDesc.ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return handler(ctx, req)
		}
		token := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				token = auth.BearerToken(values[0])
			}
		}
		authCtx, _, err := gate.Authenticate(ctx, token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "valid bearer token is required")
		}
		return handler(authCtx, req)
	}
}

var _ adminv1.AdminServiceServer = (*AdminService)(nil)
