// Package notify carries storefront outcome events to whatever the
// presentation layer wants to show them with. The engine only emits;
// rendering (toast, banner, log line) is the subscriber's business.
package notify

import (
	"github.com/melochey/storefront-api/models"
	"go.uber.org/zap"
)

// Notifier receives one callback per user-visible outcome.
type Notifier interface {
	ItemAdded(product models.Product)
	PromoApplied(code string, percent int)
	PromoRejected(code string)
	CartEmptyOnExport()
	OrderPlaced(snapshot models.PricingSnapshot)
}

// Nop discards every event. Handy default for tests.
type Nop struct{}

func (Nop) ItemAdded(models.Product)           {}
func (Nop) PromoApplied(string, int)           {}
func (Nop) PromoRejected(string)               {}
func (Nop) CartEmptyOnExport()                 {}
func (Nop) OrderPlaced(models.PricingSnapshot) {}

// ZapNotifier writes each event as a structured log line.
type ZapNotifier struct {
	log *zap.Logger
}

func NewZapNotifier(log *zap.Logger) *ZapNotifier {
	return &ZapNotifier{log: log}
}

func (n *ZapNotifier) ItemAdded(p models.Product) {
	n.log.Info("item added to cart", zap.Int("product_id", p.ID), zap.String("name", p.Name))
}

func (n *ZapNotifier) PromoApplied(code string, percent int) {
	n.log.Info("promo code applied", zap.String("code", code), zap.Int("percent", percent))
}

func (n *ZapNotifier) PromoRejected(code string) {
	n.log.Warn("promo code rejected", zap.String("code", code))
}

func (n *ZapNotifier) CartEmptyOnExport() {
	n.log.Warn("cart export requested with empty cart")
}

func (n *ZapNotifier) OrderPlaced(snap models.PricingSnapshot) {
	n.log.Info("order placed",
		zap.Float64("subtotal", snap.Subtotal),
		zap.Int("discount_percent", snap.DiscountPercent),
		zap.Float64("total", snap.Total),
	)
}
