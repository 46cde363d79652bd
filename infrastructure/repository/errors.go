package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrDuplicateKey indica violação de índice único (ex.: código de barras repetido)
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
