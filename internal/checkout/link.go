// Package checkout turns a composed order message into the WhatsApp
// deep-link the browser opens. It never contacts the destination itself.
package checkout

import (
	"net/url"
	"strings"
)

const waBase = "https://wa.me/"

// Link returns https://wa.me/<contact>?text=<message>, escaping the message
// the way encodeURIComponent does (spaces become %20, !'()* stay literal).
func Link(contact, message string) string {
	return waBase + NormalizeContact(contact) + "?text=" + EncodeComponent(message)
}

// NormalizeContact strips whitespace and a leading plus sign so the
// identifier is an international number without symbols.
func NormalizeContact(contact string) string {
	contact = strings.Join(strings.Fields(contact), "")
	return strings.TrimPrefix(contact, "+")
}

// componentUnescaper undoes the QueryEscape choices that differ from
// encodeURIComponent.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use inside a query value.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
