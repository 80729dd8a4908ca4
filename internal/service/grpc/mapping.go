package grpcsvc

import (
	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
	adminv1 "github.com/vladislavdragonenkov/cardapio/proto/cardapio/admin/v1"
)

// Денежные суммы передаются строкой с двумя знаками, как в HTTP API.
const moneyPlaces = 2

func toProtoOrder(order domain.Order) *adminv1.Order {
	items := make([]*adminv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &adminv1.OrderItem{Name: item.Name, Price: item.Price.StringFixed(moneyPlaces)})
	}
	out := &adminv1.Order{
		Id:            order.ID,
		CustomerName:  order.CustomerName,
		Address:       order.Address,
		PaymentMethod: toProtoPaymentMethod(order.PaymentMethod),
		Note:          order.Note,
		Items:         items,
		ItemsText:     order.ItemsText,
		Total:         order.Total.StringFixed(moneyPlaces),
		Status:        toProtoOrderStatus(order.Status),
	}
	if !order.CreatedAt.IsZero() {
		out.CreatedAtUnix = order.CreatedAt.Unix()
	}
	if !order.UpdatedAt.IsZero() {
		out.UpdatedAtUnix = order.UpdatedAt.Unix()
	}
	return out
}

func toProtoOrderStatus(s domain.OrderStatus) adminv1.OrderStatus {
	switch s {
	case domain.OrderStatusPending:
		return adminv1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusDelivered:
		return adminv1.OrderStatus_ORDER_STATUS_DELIVERED
	default:
		return adminv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func toProtoPaymentMethod(m domain.PaymentMethod) adminv1.PaymentMethod {
	switch m {
	case domain.PaymentPix:
		return adminv1.PaymentMethod_PAYMENT_METHOD_PIX
	case domain.PaymentCash:
		return adminv1.PaymentMethod_PAYMENT_METHOD_CASH
	case domain.PaymentCreditCard:
		return adminv1.PaymentMethod_PAYMENT_METHOD_CREDIT_CARD
	case domain.PaymentDebitCard:
		return adminv1.PaymentMethod_PAYMENT_METHOD_DEBIT_CARD
	default:
		return adminv1.PaymentMethod_PAYMENT_METHOD_UNSPECIFIED
	}
}

func toProtoReport(report reporting.Report) *adminv1.Report {
	out := &adminv1.Report{
		OrdersCount:            int64(len(report.Orders)),
		Total:                  report.Total.StringFixed(moneyPlaces),
		SalesByDay:             make([]*adminv1.DaySales, 0, len(report.SalesByDay)),
		TopProducts:            make([]*adminv1.ProductCount, 0, len(report.TopProducts)),
		RevenueByPaymentMethod: make([]*adminv1.PaymentRevenue, 0, len(report.ByPayment)),
	}
	if !report.Range.From.IsZero() {
		out.From = report.Range.From.Format(reporting.DateLayout)
	}
	if !report.Range.To.IsZero() {
		out.To = report.Range.To.Format(reporting.DateLayout)
	}
	for _, d := range report.SalesByDay {
		out.SalesByDay = append(out.SalesByDay, &adminv1.DaySales{Date: d.Date, Total: d.Total.StringFixed(moneyPlaces)})
	}
	for _, p := range report.TopProducts {
		out.TopProducts = append(out.TopProducts, &adminv1.ProductCount{Name: p.Name, Count: int64(p.Count)})
	}
	for _, p := range report.ByPayment {
		out.RevenueByPaymentMethod = append(out.RevenueByPaymentMethod, &adminv1.PaymentRevenue{
			Method: toProtoPaymentMethod(p.Method),
			Total:  p.Total.StringFixed(moneyPlaces),
		})
	}
	return out
}
