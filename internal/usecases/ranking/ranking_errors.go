package ranking

import "errors"

// Erros específicos para o contexto de ranking
var (
	ErrCriteriaNotFound  = errors.New("grand prize criteria not found")
	ErrNoActiveCriteria  = errors.New("no active grand prize criteria")
	ErrDatabaseOperation = errors.New("database operation error")
)
