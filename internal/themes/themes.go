// Package themes ranks discussion themes by how many posts mention them.
//
// The theme table is ordered: ties in mention counts resolve in favor of the
// earlier-declared theme. The built-in table covers tariff discourse; an
// alternative table can be loaded from a TOML file for other topics.
package themes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Theme is a named topical category with its trigger keywords. Keywords
// match case-insensitively as substrings.
type Theme struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// Table is an ordered set of themes. Declaration order is significant:
// it breaks ranking ties.
type Table []Theme

// Default is the built-in tariff-discourse theme table.
func Default() Table {
	return Table{
		{Name: "inflation/prices", Keywords: []string{"inflation", "prices", "price", "expensive", "cost", "costs"}},
		{Name: "china/geopolitics", Keywords: []string{"china", "beijing", "ccp", "xi", "chinese"}},
		{Name: "jobs/manufacturing", Keywords: []string{"jobs", "manufacturing", "factory", "factories", "onshore", "reshore", "made in"}},
		{Name: "trade war/retaliation", Keywords: []string{"trade war", "tariff war", "retaliation", "retaliate", "tit for tat"}},
		{Name: "farmers/agriculture", Keywords: []string{"farmers", "agriculture", "soy", "corn", "wheat", "ranchers"}},
		{Name: "consumers/smb", Keywords: []string{"consumers", "consumer", "small business", "smb", "main street"}},
		{Name: "national security", Keywords: []string{"national security", "security", "strategic", "defense", "supply chain"}},
	}
}

// tableFile is the TOML shape for an external theme table.
type tableFile struct {
	Themes []Theme `toml:"themes"`
}

// LoadFile reads a theme table from a TOML file. The file declares themes in
// ranking-tie-break order:
//
//	[[themes]]
//	name = "inflation/prices"
//	keywords = ["inflation", "prices"]
func LoadFile(path string) (Table, error) {
	var f tableFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load theme table: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("theme table %s declares no themes", path)
	}
	for _, th := range f.Themes {
		if th.Name == "" || len(th.Keywords) == 0 {
			return nil, fmt.Errorf("theme table %s has a theme missing name or keywords", path)
		}
	}
	return Table(f.Themes), nil
}

// Rank returns up to k theme names ordered by how many texts mention each
// theme, descending, with earlier-declared themes winning ties. Themes no
// text mentions are excluded; the result is empty when nothing matches.
func (t Table) Rank(texts []string, k int) []string {
	counts := make([]int, len(t))
	for _, text := range texts {
		low := strings.ToLower(text)
		for i, theme := range t {
			if mentions(low, theme.Keywords) {
				counts[i]++
			}
		}
	}

	order := make([]int, 0, len(t))
	for i := range t {
		if counts[i] > 0 {
			order = append(order, i)
		}
	}
	// Stable keeps declaration order within equal counts.
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if len(order) > k {
		order = order[:k]
	}
	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = t[idx].Name
	}
	return names
}

func mentions(low string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}
