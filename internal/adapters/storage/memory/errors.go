package memory

import (
	"fmt"

	"child-validations/internal/domain/actionitems"
	"child-validations/internal/domain/subjects"
)

var (
	ErrNotFound           = fmt.Errorf("memory: %w", subjects.ErrNotFound)
	ErrActionItemNotFound = fmt.Errorf("memory: %w", actionitems.ErrNotFound)
)
