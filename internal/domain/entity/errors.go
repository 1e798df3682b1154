package entity

import "errors"

// ErrInvalidInput — некорректные или несогласованные входные данные.
// Все ошибки валидации оборачивают её через fmt.Errorf("...: %w"),
// вызывающий код проверяет errors.Is.
var ErrInvalidInput = errors.New("invalid input")
