package implementation

import (
	"errors"
	"fmt"

	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"

	"gorm.io/gorm"
)

// translateError maps driver-level constraint errors to contract errors.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", contract.ErrDuplicate, err)
	}
	return err
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// withoutPaging drops limit/offset specs so the same filters can drive a count.
func withoutPaging(specs []specification.Specification) []specification.Specification {
	out := make([]specification.Specification, 0, len(specs))
	for _, s := range specs {
		switch s.(type) {
		case specification.Pagination, specification.OrderBy:
			continue
		}
		out = append(out, s)
	}
	return out
}
