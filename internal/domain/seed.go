package domain

// Static catalog seed, compiled in. It is the source for the first sync
// against an empty store and the offline fallback for the read model; it is
// never written back or invalidated.

// SeedCategories are the distinct category names shipped with the catalog.
func SeedCategories() []string {
	return []string{"Cigarros Sousa Cruz", "Cigarros Nacional", "Fumos", "Seda", "Isqueiros"}
}

// SeedProducts returns the embedded product list. A price of 0 means
// "price on request".
func SeedProducts() []Product {
	return []Product{
		// Cigarros Sousa Cruz
		{ID: "prod-1", Name: "DUNHILL", Description: "Maço de cigarros Dunhill.", Price: 137.80, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-2", Name: "DUNHILL DOUBLE", Description: "Maço de cigarros Dunhill Double.", Price: 136.80, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-3", Name: "DUNHILL RED", Description: "Maço de cigarros Dunhill Red.", Price: 110.60, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-4", Name: "KENT AZUL", Description: "Maço de cigarros Kent Azul.", Price: 112.90, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-5", Name: "KENT PRATA", Description: "Maço de cigarros Kent Prata.", Price: 112.90, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-6", Name: "LUCKY STRIKE DOBLE ICE", Description: "Maço de cigarros Lucky Strike Doble Ice.", Price: 121.20, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-7", Name: "LUCKY STRIKE VERMELHO", Description: "Maço de cigarros Lucky Strike Vermelho.", Price: 73.80, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-8", Name: "MARLBORO RED BOX", Description: "Maço de cigarros Marlboro Red Box.", Price: 85.90, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-9", Name: "MARLBORO RED MAÇO", Description: "Maço de cigarros Marlboro Red.", Price: 75.90, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-10", Name: "ROTHMANS AZUL", Description: "Maço de cigarros Rothmans Azul.", Price: 89.30, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-11", Name: "ROTHMANS PRATA", Description: "Maço de cigarros Rothmans Prata.", Price: 89.30, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-12", Name: "ROTHMANS VERMELHO", Description: "Maço de cigarros Rothmans Vermelho.", Price: 89.30, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-13", Name: "ROTHMANS GLOBAL AZUL", Description: "Maço de cigarros Rothmans Global Azul.", Price: 72.80, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-14", Name: "ROTHMANS GLOBAL VERMELHO", Description: "Maço de cigarros Rothmans Global Vermelho.", Price: 72.80, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-15", Name: "ROTHMANS MELANCIA", Description: "Maço de cigarros Rothmans Melancia.", Price: 108.30, Category: "Cigarros Sousa Cruz"},
		{ID: "prod-16", Name: "ROTHMANS INTERNACIONAL", Description: "Maço de cigarros Rothmans Internacional.", Price: 104.25, Category: "Cigarros Sousa Cruz"},

		// Cigarros Nacional
		{ID: "prod-17", Name: "G BRANCO", Description: "Maço de cigarros G Branco.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-18", Name: "G VERMELHO", Description: "Maço de cigarros G Vermelho.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-19", Name: "PANDORA BRANCO", Description: "Maço de cigarros Pandora Branco.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-20", Name: "PANDORA VERMELHO", Description: "Maço de cigarros Pandora Vermelho.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-21", Name: "NISE VERMELHO", Description: "Maço de cigarros Nise Vermelho.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-22", Name: "NISE BRANCO", Description: "Maço de cigarros Nise Branco.", Price: 28.90, Category: "Cigarros Nacional"},
		{ID: "prod-23", Name: "K-LINT SILVER", Description: "Maço de cigarros K-Lint Silver.", Price: 0, Category: "Cigarros Nacional"},
		{ID: "prod-24", Name: "GUDANG GARAM (1 CART)", Description: "Cartão de cigarros Gudang Garam.", Price: 0, Category: "Cigarros Nacional"},

		// Fumos
		{ID: "prod-25", Name: "FUMO MELIÁ", Description: "Pacote de fumo Meliá.", Price: 63.90, Category: "Fumos"},
		{ID: "prod-26", Name: "FUMO TREVO", Description: "Pacote de fumo Trevo.", Price: 81.90, Category: "Fumos"},

		// Seda
		{ID: "prod-27", Name: "SEDA ZOMO CHOCOLATE", Description: "Seda Zomo sabor Chocolate.", Price: 29.90, Category: "Seda"},
		{ID: "prod-28", Name: "SEDA ZOMO PINK", Description: "Seda Zomo Pink.", Price: 27.90, Category: "Seda"},
		{ID: "prod-29", Name: "SEDA ORGÂNICA", Description: "Seda Orgânica.", Price: 25.90, Category: "Seda"},
		{ID: "prod-30", Name: "SEDA BEM BOLADO", Description: "Seda Bem Bolado.", Price: 89.90, Category: "Seda"},
		{ID: "prod-31", Name: "PAPEL PARA CIGARRO TREVO CAIXA", Description: "Caixa de papel para cigarro Trevo.", Price: 44.70, Category: "Seda"},

		// Isqueiros
		{ID: "prod-32", Name: "BIC", Description: "Isqueiro BIC.", Price: 46.50, Category: "Isqueiros"},
		{ID: "prod-33", Name: "CRICKET", Description: "Isqueiro Cricket.", Price: 26.90, Category: "Isqueiros"},
		{ID: "prod-34", Name: "GTI", Description: "Isqueiro GTI.", Price: 20.70, Category: "Isqueiros"},
	}
}

// DefaultSiteInfo is the compiled-in site metadata used to seed siteInfo/main
// and as the render fallback while the store is unreachable.
func DefaultSiteInfo() SiteInfo {
	return SiteInfo{
		SiteName:         "MR Bebidas",
		HeroTitle1:       "MR BEBIDAS",
		HeroTitle2:       "DISTRIBUIDORA",
		HeroLocation:     "FORTALEZA",
		HeroSlogan:       "Explore nossa seleção completa de tabacaria e bebidas premium",
		HeroPhone:        "5585992234683",
		HeroPhoneDisplay: "(85) 99223-4683",
	}
}
