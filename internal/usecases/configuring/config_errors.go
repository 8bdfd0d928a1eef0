package configuring

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de configuração
var (
	// Erros de validação
	ErrRegionRequired      = errors.New("region is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrNameRequired        = errors.New("criteria name is required")
	ErrInvalidRate         = errors.New("rates must be greater than zero")
	ErrInvalidCriteriaType = errors.New("invalid criteria type")
	ErrInvalidWeightSplit  = errors.New("points and deals weights must sum to 100")
	ErrInvalidDateWindow   = errors.New("invalid evaluation date window")
	ErrCriteriaNotFound    = errors.New("grand prize criteria not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ConfigError é um erro com contexto adicional para configuração
type ConfigError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError cria um novo erro de configuração
func NewConfigError(baseErr error, code string, details string) *ConfigError {
	return &ConfigError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
