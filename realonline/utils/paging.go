package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wowcore/realonline/realonline/locale"
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// PageWindow resolves a free-text listing argument into a half-open index
// window [begin, end). The argument is either empty (first page), a 1-based
// page number, or an explicit "A-B" range of 1-based positions. Errors carry
// a localized, user-facing message and leave the window empty.
func PageWindow(loc *locale.Localizer, arg string, total, pageSize uint32) (begin, end uint32, err error) {
	if pageSize == 0 {
		pageSize = 1
	}

	s := strings.TrimSpace(arg)
	if s == "" {
		return 0, min32(pageSize, total), nil
	}

	if dash := strings.Index(s, "-"); dash >= 0 {
		a := strings.TrimSpace(s[:dash])
		b := strings.TrimSpace(s[dash+1:])
		if a == "" || b == "" {
			return 0, 0, errors.New(loc.T("Rozsah musí být ve tvaru A-B.", "Range must be in the form A-B."))
		}
		if !isDigits(a) || !isDigits(b) {
			return 0, 0, errors.New(loc.T("Rozsah musí obsahovat pouze čísla.", "Range must contain digits only."))
		}
		A64, _ := strconv.ParseUint(a, 10, 32)
		B64, _ := strconv.ParseUint(b, 10, 32)
		A, B := uint32(A64), uint32(B64)
		if A == 0 || B == 0 || A > B {
			return 0, 0, errors.New(loc.T("Rozsah musí být A-B, A>=1, B>=A.", "Range must be A-B, A>=1, B>=A."))
		}
		if A > total {
			return 0, 0, errors.New(loc.T("Začátek rozsahu je mimo počet online hráčů.", "Range start is beyond online player count."))
		}
		return A - 1, min32(B, total), nil
	}

	if !isDigits(s) {
		return 0, 0, errors.New(loc.T("Očekávám číslo stránky nebo rozsah A-B.", "Expecting page number or A-B range."))
	}

	page64, _ := strconv.ParseUint(s, 10, 32)
	page := uint32(page64)
	if page == 0 {
		return 0, 0, errors.New(loc.T("Číslo stránky začíná od 1.", "Page number starts at 1."))
	}

	pages := PageCount(total, pageSize)
	if page > pages {
		return 0, 0, fmt.Errorf("%s", loc.T(
			fmt.Sprintf("Požadovaná stránka neexistuje. Celkem dostupných stránek: %d.", pages),
			fmt.Sprintf("Requested page does not exist. Total pages: %d.", pages),
		))
	}

	begin = (page - 1) * pageSize
	return begin, min32(begin+pageSize, total), nil
}

// PageCount returns ceil(total/pageSize), never less than 1.
func PageCount(total, pageSize uint32) uint32 {
	if pageSize == 0 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	return pages
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
