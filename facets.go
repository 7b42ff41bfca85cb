package gamemage

// Facets holds the distinct values a caller can filter by.
type Facets struct {
	Genres     []string `json:"genres" yaml:"genres"`
	Platforms  []string `json:"platforms" yaml:"platforms"`
	Tags       []string `json:"tags" yaml:"tags"`
	Publishers []string `json:"publishers" yaml:"publishers"`
	Developers []string `json:"developers" yaml:"developers"`
	MinYear    int      `json:"min_year" yaml:"min_year"`
	MaxYear    int      `json:"max_year" yaml:"max_year"`
}

// Facets returns the distinct facet values of the current collection.
func (c *client) Facets() Facets {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lo, hi := c.store.YearBounds()
	return Facets{
		Genres:     c.store.Genres(),
		Platforms:  c.store.Platforms(),
		Tags:       c.store.Tags(),
		Publishers: c.store.Publishers(),
		Developers: c.store.Developers(),
		MinYear:    lo,
		MaxYear:    hi,
	}
}
