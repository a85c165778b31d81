package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the name, note and search filters to the query.
//
// An explicitly empty name or note filters for resources where that field is empty.
func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// paginate sets offset and limit on the query. The limit defaults to 50.
func paginate(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	// Does not need checking since the default is 0
	query = query.Offset(int(offset))

	l := 50
	if slices.Contains(setFields, "Limit") {
		l = limit
	}

	return query.Limit(l), l
}
