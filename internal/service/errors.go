package service

import (
	"errors"

	"svg-plotter/internal/plot"
)

var (
	ErrEmptyInput     = errors.New("Input is empty.")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
)

// InvalidLines 返回错误中携带的非法行号，没有则返回 nil
func InvalidLines(err error) []int {
	var invalid *plot.InvalidLineError
	if errors.As(err, &invalid) {
		return invalid.Lines
	}
	return nil
}

// UserMessage 返回可以直接展示给用户的错误信息，
// 例如 "Input is empty." 或 "Invalid input at line 2,5"。
func UserMessage(err error) string {
	var invalid *plot.InvalidLineError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}
	if errors.Is(err, ErrEmptyInput) {
		return ErrEmptyInput.Error()
	}
	return "An unexpected error occurred"
}
