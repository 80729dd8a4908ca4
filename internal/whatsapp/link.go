// Package whatsapp собирает текст заказа и deep link https://wa.me для отправки
// заказа продавцу. Ссылка только генерируется, сервис её не открывает.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

const baseURL = "https://wa.me/"

// Message форматирует заказ для мессенджера. signature добавляется последней
// строкой, если не пустая.
func Message(order domain.Order, signature string) string {
	var b strings.Builder
	b.WriteString("*Pedido de ")
	b.WriteString(order.CustomerName)
	b.WriteString("*\n\n")

	for _, item := range order.Items {
		b.WriteString("• ")
		b.WriteString(item.Name)
		b.WriteString(" - ")
		b.WriteString(domain.FormatPrice(item.Price))
		b.WriteString("\n")
	}

	b.WriteString("\n*Total:* ")
	b.WriteString(domain.FormatPrice(order.Total))
	b.WriteString("\n\n*Endereço:* ")
	b.WriteString(order.Address)
	b.WriteString("\n*Pagamento:* ")
	b.WriteString(order.PaymentMethod.Label())
	b.WriteString("\n")
	if note := strings.TrimSpace(order.Note); note != "" {
		b.WriteString("*Observação:* ")
		b.WriteString(note)
		b.WriteString("\n")
	}
	if signature = strings.TrimSpace(signature); signature != "" {
		b.WriteString("\n")
		b.WriteString(signature)
	}
	return b.String()
}

// Link возвращает https://wa.me/<digits>?text=<message>. Пробелы и переводы
// строки кодируются как %20 и %0A.
func Link(contact, message string) (string, error) {
	digits, err := domain.NormalizeContact(contact)
	if err != nil {
		return "", err
	}
	return baseURL + digits + "?text=" + escape(message), nil
}

// OrderLink собирает ссылку по заказу.
func OrderLink(contact string, order domain.Order, signature string) (string, error) {
	return Link(contact, Message(order, signature))
}

func escape(s string) string {
	// QueryEscape кодирует литеральный "+" как %2B, поэтому замена безопасна.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
