package usecase

import (
	"errors"
	"fmt"
)

var (
	// 販売数量が0以下
	ErrInvalidQuantity = errors.New("invalid quantity")

	// 在庫不足（販売は在庫を超えたら必ず拒否）
	ErrInsufficientStock = errors.New("insufficient stock")
)

// 入力不正。最初に違反したルールだけを持つ。
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

func NewValidationError(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ストレージ側の失敗。Usecaseはリトライしない（呼び出し側の判断）。
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(err error) error {
	return &StorageError{Err: err}
}

func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	ok := errors.As(err, &se)
	return se, ok
}
