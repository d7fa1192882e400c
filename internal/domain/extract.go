package domain

// MarketExtract is the cached snapshot of comparable listings for one product.
type MarketExtract struct {
	Articles     []Article   `json:"articles"`
	Info         ProductInfo `json:"info"`
	ArticlesFoil *[]Article  `json:"articles_foil,omitempty"`
	// SampleSize is the maxResults the articles were fetched with. Zero in
	// files written before it was recorded.
	SampleSize   int         `json:"sample_size,omitempty"`
}

// Capped reports whether a request for maxResults articles could return more
// than the stored sample: the stored sample is smaller and it filled the
// request it came from.
func (m *MarketExtract) Capped(maxResults int) bool {
	return len(m.Articles) < maxResults && len(m.Articles) >= m.SampleSize
}

// HasFoilSection reports whether foil comparables were already fetched.
func (m *MarketExtract) HasFoilSection() bool {
	return m.ArticlesFoil != nil
}

// SetFoilArticles stores the foil section. A nil list is stored as empty so
// that the section counts as fetched.
func (m *MarketExtract) SetFoilArticles(articles []Article) {
	if articles == nil {
		articles = []Article{}
	}
	m.ArticlesFoil = &articles
}

// Comparables returns the listings to sample for a foil or non-foil row.
func (m *MarketExtract) Comparables(foil bool) []Article {
	if foil {
		if m.ArticlesFoil == nil {
			return nil
		}
		return *m.ArticlesFoil
	}
	return m.Articles
}

// Article is another seller's listing of the same product.
type Article struct {
	ID        int64    `json:"idArticle"`
	ProductID int64    `json:"idProduct"`
	Language  Language `json:"language"`
	Comments  string   `json:"comments,omitempty"`
	Price     float64  `json:"price"`
	Count     int      `json:"count"`
	Condition string   `json:"condition"`
	IsFoil    bool     `json:"isFoil"`
	IsSigned  bool     `json:"isSigned"`
	IsAltered bool     `json:"isAltered"`
	IsPlayset bool     `json:"isPlayset"`
	Seller    Seller   `json:"seller"`
}

type Language struct {
	ID   int    `json:"idLanguage"`
	Name string `json:"languageName"`
}

type Seller struct {
	ID           int64  `json:"idUser"`
	Username     string `json:"username"`
	Country      string `json:"country,omitempty"`
	IsCommercial int    `json:"isCommercial"`
	Reputation   int    `json:"reputation"`
}

// ProductInfo is the product metadata returned with an extract.
type ProductInfo struct {
	ID            int64       `json:"idProduct"`
	Name          string      `json:"enName"`
	ExpansionName string      `json:"expansionName,omitempty"`
	Rarity        string      `json:"rarity,omitempty"`
	PriceGuide    *PriceGuide `json:"priceGuide,omitempty"`
}

// PriceGuide holds the marketplace's own aggregate prices for a product.
type PriceGuide struct {
	Sell    float64 `json:"SELL"`
	Low     float64 `json:"LOW"`
	LowEx   float64 `json:"LOWEX"`
	LowFoil float64 `json:"LOWFOIL"`
	Avg     float64 `json:"AVG"`
	Trend   float64 `json:"TREND"`
}
