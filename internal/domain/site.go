package domain

// LocalizedText is a French/Arabic text pair.
type LocalizedText struct {
	Fr string `json:"fr" form:"fr"`
	Ar string `json:"ar" form:"ar"`
}

// Get returns the text for the locale, falling back to French when the
// Arabic variant is empty.
func (t LocalizedText) Get(l Locale) string {
	return pick(l, t.Fr, t.Ar)
}

// SiteContent is the singleton document of presentational text.
type SiteContent struct {
	StoreName    string        `json:"storeName" form:"storeName"`
	HeroTitle    LocalizedText `json:"heroTitle" form:"heroTitle"`
	HeroSubtitle LocalizedText `json:"heroSubtitle" form:"heroSubtitle"`
	FooterText   LocalizedText `json:"footerText" form:"footerText"`
}

// Settings groups everything the admin settings form edits.
// The admin PIN is an advisory shared secret kept in plain text next to the
// rest of the client data.
type Settings struct {
	AdminPin          string      `json:"adminPin"`
	ContactIdentifier string      `json:"contactIdentifier"`
	SiteContent       SiteContent `json:"siteContent"`
}
