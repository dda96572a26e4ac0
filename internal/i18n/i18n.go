// Package i18n holds the server-side strings of the storefront.
package i18n

import "github.com/talkincode/storefront/internal/domain"

var messages = map[string]domain.LocalizedText{
	"shop":            {Fr: "Boutique", Ar: "المتجر"},
	"admin":           {Fr: "Administration", Ar: "الإدارة"},
	"cart":            {Fr: "Panier", Ar: "السلة"},
	"inStock":         {Fr: "En Stock", Ar: "متوفر"},
	"lowStock":        {Fr: "Stock Faible", Ar: "مخزون منخفض"},
	"emptyCart":       {Fr: "Votre panier est vide", Ar: "سلتك فارغة حالياً"},
	"total":           {Fr: "Total", Ar: "المجموع"},
	"checkout":        {Fr: "Commander via WhatsApp", Ar: "إتمام الطلب عبر الواتساب"},
	"added":           {Fr: "ajouté!", Ar: "تمت الإضافة!"},
	"accessDenied":    {Fr: "Code incorrect", Ar: "الرمز غير صحيح"},
	"adminRequired":   {Fr: "Accès administrateur requis", Ar: "يلزم دخول المشرف"},
	"settingsSaved":   {Fr: "Paramètres enregistrés !", Ar: "تم حفظ الإعدادات!"},
	"productAdded":    {Fr: "Produit ajouté avec succès !", Ar: "تمت إضافة المنتج بنجاح!"},
	"productUpdated":  {Fr: "Produit mis à jour avec succès !", Ar: "تم تحديث المنتج بنجاح!"},
	"productDeleted":  {Fr: "Produit supprimé.", Ar: "تم حذف المنتج."},
	"productNotFound": {Fr: "Produit introuvable", Ar: "المنتج غير موجود"},
	"storageError":    {Fr: "Échec de l'enregistrement", Ar: "فشل الحفظ"},
}

// T returns the message for key in locale, or key itself when unknown.
func T(key string, locale domain.Locale) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	return m.Get(locale)
}
