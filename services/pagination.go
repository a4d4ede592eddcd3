package services

import (
	"strconv"

	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 10
)

// ParsePage reads ?perpage= and ?page=. Asking for more than MaxPerPage
// rows is rejected rather than clamped.
func ParsePage(perPage, page string) (repository.Page, error) {
	p := repository.Page{Number: 1, PerPage: DefaultPerPage}
	if perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n < 1 {
			return p, apperr.Validation("perpage must be a positive integer")
		}
		if n > MaxPerPage {
			return p, apperr.Validation("perpage must not exceed %d", MaxPerPage)
		}
		p.PerPage = n
	}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return p, apperr.Validation("page must be a positive integer")
		}
		p.Number = n
	}
	return p, nil
}
