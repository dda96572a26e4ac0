package domain

const (
	// DefaultAdminPin is the factory PIN used until an admin changes it.
	DefaultAdminPin = "1313"
	// DefaultContactIdentifier is the placeholder checkout destination.
	DefaultContactIdentifier = "22200000000"
)

// DefaultSiteContent returns the built-in bilingual site document.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		StoreName: "E-Commerce Mauritanie",
		HeroTitle: LocalizedText{
			Fr: "Bienvenue sur E-Commerce Mauritanie",
			Ar: "مرحبًا بكم في التجارة الإلكترونية الموريتانية",
		},
		HeroSubtitle: LocalizedText{
			Fr: "Les meilleurs produits aux prix compétitifs",
			Ar: "أفضل المنتجات بأسعار تنافسية",
		},
		FooterText: LocalizedText{
			Fr: "© 2024 E-Commerce Mauritanie - Tous droits réservés",
			Ar: "© 2024 التجارة الإلكترونية الموريتانية - جميع الحقوق محفوظة",
		},
	}
}

func price(v float64) *float64 { return &v }

// DefaultCatalog returns the built-in catalog served when nothing is persisted.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:             1,
			TitleFr:        "Samsung Galaxy Smartphone",
			TitleAr:        "هاتف ذكي سامسونج جالاكسي",
			SubtitleFr:     "Smartphone haute performance",
			SubtitleAr:     "هاتف ذكي عالي الأداء",
			SellingPointFr: "Le meilleur rapport qualité/prix de l'année pour les amateurs de photo.",
			SellingPointAr: "أفضل قيمة مقابل السعر هذا العام لعشاق التصوير.",
			Price:          13500,
			OldPrice:       price(15000),
			Image:          "https://images.unsplash.com/photo-1610945265078-385f72642866?auto=format&fit=crop&q=80&w=800",
			Category:       "High-Tech",
			IsNew:          true,
			Features: []string{
				"Écran Super AMOLED 6.5 pouces",
				"Batterie 5000mAh longue durée",
				"128GB Stockage / 6GB RAM",
				"Triple caméra IA 64MP",
			},
			Stock:      12,
			StockAlert: 5,
			Packaging:  "Boîte renforcée scellée",
			Warranty:   "12 mois",
		},
		{
			ID:             2,
			TitleFr:        "Chaussures Sport Nike",
			TitleAr:        "حذاء رياضي نايكي",
			SubtitleFr:     "Confortable et moderne",
			SubtitleAr:     "مريح وعصري",
			SellingPointFr: "Alliez style urbain et performance sportive sans compromis.",
			SellingPointAr: "اجمع بين الأسلوب الحضري والأداء الرياضي دون مساومة.",
			Price:          6800,
			OldPrice:       price(8000),
			Image:          "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&q=80&w=800",
			Category:       "Mode",
			IsNew:          true,
			Features: []string{
				"Semelle Air Max amortissante",
				"Tissu respirant Mesh",
				"Design ergonomique léger",
				"Disponible en 3 coloris",
			},
			Stock:      4,
			StockAlert: 8,
			Packaging:  "Boîte standard",
			SizeGuide:  "EU 38-45",
		},
		{
			ID:             3,
			TitleFr:        "Apple Watch Series",
			TitleAr:        "ساعة آبل الذكية",
			SubtitleFr:     "Dernière technologie portable",
			SubtitleAr:     "أحدث التقنيات القابلة للارتداء",
			SellingPointFr: "L'extension parfaite de votre iPhone pour une vie connectée.",
			SellingPointAr: "الامتداد المثالي للآيفون لحياة متصلة.",
			Price:          25000,
			Image:          "https://images.unsplash.com/photo-1434493789847-2f02ea6ca920?auto=format&fit=crop&q=80&w=800",
			Category:       "High-Tech",
			Features: []string{
				"Capteur cardiaque ECG",
				"GPS intégré",
				"Écran Retina toujours activé",
				"Résistant à l'eau 50m",
			},
			Stock:      25,
			StockAlert: 5,
			Packaging:  "Boîte Premium Apple",
			Warranty:   "Apple Care",
		},
	}
}
