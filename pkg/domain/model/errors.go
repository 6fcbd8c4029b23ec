// 指示: miu200521358
package model

import "fmt"

// SelectionError は選択オブジェクトの数や種別の不正を表す。
type SelectionError struct {
	Reason string
}

// NewSelectionError は選択エラーを生成する。
func NewSelectionError(format string, args ...any) *SelectionError {
	return &SelectionError{Reason: fmt.Sprintf(format, args...)}
}

// Error は選択エラーの内容を返す。
func (e *SelectionError) Error() string {
	return e.Reason
}

// MissingDataError はアクティブオブジェクトの必須データ不足を表す。
type MissingDataError struct {
	Reason string
}

// NewMissingDataError はデータ不足エラーを生成する。
func NewMissingDataError(format string, args ...any) *MissingDataError {
	return &MissingDataError{Reason: fmt.Sprintf(format, args...)}
}

// Error はデータ不足エラーの内容を返す。
func (e *MissingDataError) Error() string {
	return e.Reason
}
