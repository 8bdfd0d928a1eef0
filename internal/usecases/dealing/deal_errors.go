package dealing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de negociações
var (
	// Erros de validação
	ErrDealNotFound     = errors.New("deal not found")
	ErrUserNotFound     = errors.New("deal owner not found")
	ErrInvalidDealType  = errors.New("invalid deal type")
	ErrInvalidDealValue = errors.New("deal value must be greater than zero")
	ErrInvalidCloseDate = errors.New("invalid close date")

	// Erros de resgate
	ErrInvalidRedeemAmount = errors.New("redeem amount must be greater than zero")
	ErrInsufficientPoints  = errors.New("insufficient points balance")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// DealError é um erro com contexto adicional para negociações
type DealError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	DealID  string // ID da negociação envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DealError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DealError) Unwrap() error {
	return e.Err
}

// NewDealError cria um novo erro de negociação
func NewDealError(baseErr error, code string, details string) *DealError {
	return &DealError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewDealErrorWithID cria um novo erro de negociação com o ID envolvido
func NewDealErrorWithID(baseErr error, code string, dealID string, details string) *DealError {
	return &DealError{
		Err:     baseErr,
		Code:    code,
		DealID:  dealID,
		Details: details,
	}
}
