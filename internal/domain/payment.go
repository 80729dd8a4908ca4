package domain

import (
	"strings"
)

// PaymentMethod: способ оплаты заказа.
type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
)

// PaymentMethods перечисляет способы оплаты в порядке отображения.
var PaymentMethods = []PaymentMethod{PaymentPix, PaymentCash, PaymentCreditCard, PaymentDebitCard}

// Label возвращает подпись способа оплаты для клиента.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentPix:
		return "Pix"
	case PaymentCash:
		return "Dinheiro"
	case PaymentCreditCard:
		return "Cartão de Crédito"
	case PaymentDebitCard:
		return "Cartão de Débito"
	default:
		return string(m)
	}
}

// Valid проверяет, что способ оплаты поддерживается.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// ParsePaymentMethod принимает код ("credit_card") или подпись ("Cartão de Crédito") без учёта регистра.
// Пустое значение → ErrMissingFields, неизвестное → ErrInvalidPaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", ErrMissingFields
	}
	for _, m := range PaymentMethods {
		if strings.EqualFold(v, string(m)) || strings.EqualFold(v, m.Label()) {
			return m, nil
		}
	}
	return "", ErrInvalidPaymentMethod
}
