package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
)

type paymentMethodView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type storeView struct {
	Open           bool                `json:"open"`
	ContactNumber  string              `json:"contact_number"`
	Theme          string              `json:"theme"`
	LogoURL        string              `json:"logo_url,omitempty"`
	PaymentMethods []paymentMethodView `json:"payment_methods"`
}

type settingsView struct {
	storeView
	RefreshIntervalSeconds int       `json:"refresh_interval_seconds"`
	LoginRequired          bool      `json:"login_required"`
	UpdatedAt              time.Time `json:"updated_at,omitempty"`
}

type categoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"image_ref,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	CategoryID  string `json:"category_id"`
}

type menuSectionView struct {
	Category categoryView  `json:"category"`
	Products []productView `json:"products"`
}

type lineView struct {
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

type cartView struct {
	Items []lineView `json:"items"`
	Count int        `json:"count"`
	Total string     `json:"total"`
}

type orderView struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	Address       string     `json:"address"`
	PaymentMethod string     `json:"payment_method"`
	PaymentLabel  string     `json:"payment_label"`
	Note          string     `json:"note,omitempty"`
	Items         []lineView `json:"items"`
	Total         string     `json:"total"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type submitView struct {
	Order        orderView `json:"order"`
	WhatsAppLink string    `json:"whatsapp_link,omitempty"`
	ReceiptURL   string    `json:"receipt_url"`
}

type orderListView struct {
	Orders                 []orderView `json:"orders"`
	ServerTime             time.Time   `json:"server_time"`
	RefreshIntervalSeconds int         `json:"refresh_interval_seconds"`
}

type daySalesView struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

type productCountView struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type paymentRevenueView struct {
	Method string `json:"method"`
	Label  string `json:"label"`
	Total  string `json:"total"`
}

type reportView struct {
	From        string               `json:"from,omitempty"`
	To          string               `json:"to,omitempty"`
	OrdersCount int                  `json:"orders_count"`
	Total       string               `json:"total"`
	SalesByDay  []daySalesView       `json:"sales_by_day"`
	TopProducts []productCountView   `json:"top_products"`
	ByPayment   []paymentRevenueView `json:"revenue_by_payment_method"`
}

func mediaURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "/media/" + ref
}

func newStoreView(cfg domain.StoreConfig) storeView {
	methods := make([]paymentMethodView, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		methods = append(methods, paymentMethodView{Code: string(m), Label: m.Label()})
	}
	return storeView{
		Open:           cfg.Open,
		ContactNumber:  cfg.ContactNumber,
		Theme:          string(cfg.Theme),
		LogoURL:        mediaURL(cfg.LogoRef),
		PaymentMethods: methods,
	}
}

func newCategoryView(c domain.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name}
}

func newProductView(p domain.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImageRef:    p.ImageRef,
		ImageURL:    mediaURL(p.ImageRef),
		CategoryID:  p.CategoryID,
	}
}

func newProductViews(products []domain.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, newProductView(p))
	}
	return out
}

func newCartView(c domain.Cart) cartView {
	items := make([]lineView, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, lineView{ProductID: item.ProductID, Name: item.Name, Price: item.Price.StringFixed(2)})
	}
	return cartView{Items: items, Count: len(items), Total: c.Total().StringFixed(2)}
}

func newOrderView(o domain.Order) orderView {
	items := make([]lineView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, lineView{Name: item.Name, Price: item.Price.StringFixed(2)})
	}
	if len(items) == 0 {
		for _, name := range o.ItemNames() {
			items = append(items, lineView{Name: name})
		}
	}
	return orderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Address:       o.Address,
		PaymentMethod: string(o.PaymentMethod),
		PaymentLabel:  o.PaymentMethod.Label(),
		Note:          o.Note,
		Items:         items,
		Total:         o.Total.StringFixed(2),
		Status:        string(o.Status),
		StatusLabel:   o.Status.Label(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func newReportView(r reporting.Report) reportView {
	view := reportView{
		OrdersCount: len(r.Orders),
		Total:       r.Total.StringFixed(2),
		SalesByDay:  make([]daySalesView, 0, len(r.SalesByDay)),
		TopProducts: make([]productCountView, 0, len(r.TopProducts)),
		ByPayment:   make([]paymentRevenueView, 0, len(r.ByPayment)),
	}
	if !r.Range.From.IsZero() {
		view.From = r.Range.From.Format(reporting.DateLayout)
	}
	if !r.Range.To.IsZero() {
		view.To = r.Range.To.Format(reporting.DateLayout)
	}
	for _, d := range r.SalesByDay {
		view.SalesByDay = append(view.SalesByDay, daySalesView{Date: d.Date, Total: d.Total.StringFixed(2)})
	}
	for _, p := range r.TopProducts {
		view.TopProducts = append(view.TopProducts, productCountView{Name: p.Name, Count: p.Count})
	}
	for _, p := range r.ByPayment {
		view.ByPayment = append(view.ByPayment, paymentRevenueView{Method: string(p.Method), Label: p.Method.Label(), Total: p.Total.StringFixed(2)})
	}
	return view
}
