package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page is a 1-based page request.
type Page struct {
	Number  int
	PerPage int
}

func (p Page) Offset() int { return (p.Number - 1) * p.PerPage }

func (p Page) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.PerPage)
}

// SortField is one entry of an ordering list such as "price,-title".
type SortField struct {
	Column string
	Desc   bool
}

// ParseOrdering maps a comma-separated field list onto column names. The
// second return value is the first field not present in allowed.
func ParseOrdering(raw string, allowed map[string]string) ([]SortField, string) {
	var out []SortField
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		desc := strings.HasPrefix(f, "-")
		col, ok := allowed[strings.TrimPrefix(f, "-")]
		if !ok {
			return nil, f
		}
		out = append(out, SortField{Column: col, Desc: desc})
	}
	return out, ""
}

func applyOrdering(db *gorm.DB, fields []SortField, fallback string) *gorm.DB {
	for _, f := range fields {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: f.Column}, Desc: f.Desc})
	}
	// stable pages need a unique tiebreaker
	return db.Order(fallback)
}

// likeEscape is the ESCAPE character for LIKE patterns. Backslash is
// avoided because MySQL treats it as an escape inside string literals.
const likeEscape = "!"

// likeTerm lowercases s and escapes LIKE wildcards so they match literally.
// Use it with "LIKE ? ESCAPE '!'".
func likeTerm(s string) string {
	return strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	).Replace(strings.ToLower(s))
}
