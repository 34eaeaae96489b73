package domain

import (
	"sort"
)

// UnknownChampionName is reported for IDs missing from the catalog.
const UnknownChampionName = "Unknown"

type Champion struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChampionLookup is the result of resolving a champion ID. Found is false when
// the name was defaulted to UnknownChampionName.
type ChampionLookup struct {
	ID    int
	Name  string
	Found bool
}

// ChampionCatalog maps numeric champion IDs to display names. It is built once
// and never modified, so it is safe to share between handlers.
type ChampionCatalog struct {
	version string
	names   map[int]string
}

// NewChampionCatalog copies names into a new catalog. An empty or nil map yields
// a degraded catalog where every lookup reports UnknownChampionName.
func NewChampionCatalog(version string, names map[int]string) *ChampionCatalog {
	copied := make(map[int]string, len(names))
	for id, name := range names {
		copied[id] = name
	}
	return &ChampionCatalog{version: version, names: copied}
}

// EmptyChampionCatalog returns the degraded catalog used when DataDragon could not be loaded.
func EmptyChampionCatalog() *ChampionCatalog {
	return NewChampionCatalog("", nil)
}

func (c *ChampionCatalog) Lookup(id int) ChampionLookup {
	if name, ok := c.names[id]; ok {
		return ChampionLookup{ID: id, Name: name, Found: true}
	}
	return ChampionLookup{ID: id, Name: UnknownChampionName}
}

// Name returns the display name for id, or UnknownChampionName.
func (c *ChampionCatalog) Name(id int) string {
	return c.Lookup(id).Name
}

func (c *ChampionCatalog) Version() string {
	return c.version
}

func (c *ChampionCatalog) Len() int {
	return len(c.names)
}

// Champions returns every catalog entry ordered by name.
func (c *ChampionCatalog) Champions() []Champion {
	champions := make([]Champion, 0, len(c.names))
	for id, name := range c.names {
		champions = append(champions, Champion{ID: id, Name: name})
	}
	sort.Slice(champions, func(i, j int) bool {
		if champions[i].Name == champions[j].Name {
			return champions[i].ID < champions[j].ID
		}
		return champions[i].Name < champions[j].Name
	})
	return champions
}

// Resolve maps ids to champions in order.
func (c *ChampionCatalog) Resolve(ids []int) []Champion {
	champions := make([]Champion, len(ids))
	for i, id := range ids {
		champions[i] = Champion{ID: id, Name: c.Name(id)}
	}
	return champions
}
