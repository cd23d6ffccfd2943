package catalog

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Vibe        []string `json:"vibe"`
	Gender      string   `json:"gender"`
}

// Category is one entry of the shop's category grid, derived from the
// gender keys present in the catalog.
type Category struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
