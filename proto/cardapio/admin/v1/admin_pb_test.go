package adminv1

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
)

func TestEnumGeneratedHelpers(t *testing.T) {
	status := OrderStatus_ORDER_STATUS_DELIVERED
	if got := status.Enum(); got == nil || *got != status {
		t.Fatalf("Enum() mismatch: got %v want %v", got, status)
	}
	if status.String() != "ORDER_STATUS_DELIVERED" {
		t.Fatalf("unexpected String(): %s", status.String())
	}
	if status.Type() == nil || status.Descriptor() == nil {
		t.Fatalf("enum descriptors must not be nil")
	}
	_, _ = status.EnumDescriptor()

	method := PaymentMethod_PAYMENT_METHOD_CREDIT_CARD
	if method.Number() != 3 {
		t.Fatalf("unexpected number for %s: %d", method, method.Number())
	}
	if PaymentMethod(42).String() == "" {
		t.Fatalf("unknown enum string must not be empty")
	}
}

func TestGeneratedMessageHelpers(t *testing.T) {
	order := &Order{
		Id:            "order-1",
		CustomerName:  "Ana",
		Address:       "Rua A, 10",
		PaymentMethod: PaymentMethod_PAYMENT_METHOD_PIX,
		Items:         []*OrderItem{{Name: "Bacon e cheddar", Price: "45.00"}},
		ItemsText:     "Bacon e cheddar (R$ 45.00)\n",
		Total:         "45.00",
		Status:        OrderStatus_ORDER_STATUS_PENDING,
		CreatedAtUnix: 1715362200,
	}
	messages := []any{
		&OrderItem{Name: "Bacon e cheddar", Price: "45.00"},
		order,
		&StoreSettings{Open: true, ContactNumber: "5511999990000", Theme: "dark"},
		&ListOrdersRequest{Status: OrderStatus_ORDER_STATUS_PENDING, SinceUnix: 1, Limit: 10},
		&ListOrdersResponse{Orders: []*Order{order}},
		&MarkDeliveredRequest{OrderId: "order-1"},
		&MarkDeliveredResponse{Order: order},
		&RemoveOrderRequest{OrderId: "order-1"},
		&RemoveOrderResponse{OrderId: "order-1"},
		&SetStoreOpenRequest{Open: true},
		&SetStoreOpenResponse{Settings: &StoreSettings{Open: true}},
		&GetReportRequest{From: "2024-05-01", To: "2024-05-31"},
		&DaySales{Date: "2024-05-10", Total: "45.00"},
		&ProductCount{Name: "Bacon e cheddar", Count: 1},
		&PaymentRevenue{Method: PaymentMethod_PAYMENT_METHOD_PIX, Total: "45.00"},
		&Report{From: "2024-05-01", To: "2024-05-31", OrdersCount: 1, Total: "45.00"},
		&GetReportResponse{Report: &Report{OrdersCount: 1}},
	}

	for _, msg := range messages {
		t.Run(reflect.TypeOf(msg).Elem().Name(), func(t *testing.T) {
			exerciseGeneratedMessage(t, msg)
		})
	}
}

func TestOrderWireRoundTrip(t *testing.T) {
	in := &ListOrdersResponse{Orders: []*Order{{
		Id:            "order-1",
		PaymentMethod: PaymentMethod_PAYMENT_METHOD_DEBIT_CARD,
		Items:         []*OrderItem{{Name: "Batata", Price: "36.00"}},
		Status:        OrderStatus_ORDER_STATUS_DELIVERED,
		UpdatedAtUnix: 1715362200,
	}}}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out ListOrdersResponse
	if err := proto.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Fatalf("round trip mismatch: %v vs %v", in, &out)
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_cardapio_admin_v1_admin_proto
	if fd.Path() != "proto/cardapio/admin/v1/admin.proto" {
		t.Fatalf("unexpected descriptor path: %s", fd.Path())
	}
	if fd.Package() != "cardapio.admin.v1" {
		t.Fatalf("unexpected package: %s", fd.Package())
	}
	if fd.Messages().Len() != 17 {
		t.Fatalf("expected 17 message descriptors, got %d", fd.Messages().Len())
	}
	if fd.Enums().Len() != 2 {
		t.Fatalf("expected 2 enum descriptors, got %d", fd.Enums().Len())
	}
	if fd.Services().Len() != 1 || fd.Services().Get(0).Methods().Len() != 5 {
		t.Fatalf("expected AdminService with 5 methods")
	}
	if got := string(fd.Services().Get(0).FullName()); got != AdminService_ServiceDesc.ServiceName {
		t.Fatalf("descriptor and ServiceDesc disagree: %s vs %s", got, AdminService_ServiceDesc.ServiceName)
	}
}

func exerciseGeneratedMessage(t *testing.T, msg any) {
	t.Helper()

	v := reflect.ValueOf(msg)

	callNoArg(t, v, "String")
	callNoArg(t, v, "ProtoReflect")
	callNoArg(t, v, "Descriptor")
	callGetterMethods(t, v)
	callNoArg(t, v, "Reset")

	nilReceiver := reflect.Zero(v.Type())
	callNoArg(t, nilReceiver, "ProtoReflect")
	callNoArg(t, nilReceiver, "Descriptor")
	callGetterMethods(t, nilReceiver)
}

func callGetterMethods(t *testing.T, v reflect.Value) {
	t.Helper()

	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Get") || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		callNoArg(t, v, m.Name)
	}
}

func callNoArg(t *testing.T, v reflect.Value, method string) {
	t.Helper()

	mv := v.MethodByName(method)
	if !mv.IsValid() || mv.Type().NumIn() != 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("method %s panicked: %v", method, r)
		}
	}()

	_ = mv.Call(nil)
}
