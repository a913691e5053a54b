// Package whatsapp builds the merchant messages and wa.me deep links the
// storefront hands to the shopper, and synthesizes the local Order record a
// checkout produces. Message and link building is pure; recording
// interactions is the Tracker's job and happens at the call site.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"boutique/models"
)

// FormatPrice renders a price with two fraction digits and a comma decimal
// separator, e.g. 130 -> "130,00".
func FormatPrice(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// CartTotal sums price times quantity over the cart lines
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ProductMessage renders the interest message for a single product
func ProductMessage(p models.Product) string {
	return fmt.Sprintf(`Olá! Tenho interesse neste produto:

*%s*
Preço: R$ %s

%s

Pode me enviar mais informações?`, p.Name, FormatPrice(p.Price), p.Description)
}

// CartMessage renders the checkout message: a numbered list of the cart
// lines followed by the grand total. An empty cart yields an empty list and
// a zero total.
func CartMessage(items []models.CartItem) string {
	var b strings.Builder
	b.WriteString("Olá! Tenho interesse nos seguintes produtos:\n\n")

	for i, item := range items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Product.Name)
		fmt.Fprintf(&b, "   Preço: R$ %s\n", FormatPrice(item.Product.Price))
		if item.Size != "" {
			fmt.Fprintf(&b, "   Tamanho: %s\n", item.Size)
		}
		if item.Color != "" {
			fmt.Fprintf(&b, "   Cor: %s\n", item.Color)
		}
		fmt.Fprintf(&b, "   Quantidade: %d\n\n", item.Quantity)
	}

	fmt.Fprintf(&b, "*Total: R$ %s*\n\n", FormatPrice(CartTotal(items)))
	b.WriteString("Pode me enviar mais informações sobre a disponibilidade?")
	return b.String()
}

// Link builds a wa.me deep link carrying the message as the text parameter
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// ProductLink returns the interest message for the product and its deep link
func ProductLink(p models.Product, phone string) (message, link string) {
	message = ProductMessage(p)
	return message, Link(phone, message)
}

// CartLink returns the checkout message for the cart and its deep link
func CartLink(items []models.CartItem, phone string) (message, link string) {
	message = CartMessage(items)
	return message, Link(phone, message)
}
