package app

import (
	"github.com/talkincode/storefront/internal/domain"
	"go.uber.org/zap"
)

// checkAdminPin warns when the admin screens are still behind the factory PIN.
func (a *Application) checkAdminPin() {
	pin := a.siteConfig.AdminPin()
	switch pin {
	case "":
		zap.L().Warn("admin PIN is empty, any blank attempt unlocks the admin screens")
	case domain.DefaultAdminPin:
		zap.L().Warn("admin PIN is still the factory default, change it in the settings")
	}
}

// checkCatalog reports the catalog state at boot.
func (a *Application) checkCatalog() {
	products := a.catalog.List()
	if len(products) == 0 {
		zap.L().Warn("catalog is empty")
		return
	}
	low := a.catalog.LowStock()
	zap.L().Info("catalog ready",
		zap.Int("products", len(products)),
		zap.Int("low_stock", len(low)))
}
