package domain

import "errors"

var (
	// ErrInvalidConfiguration возвращается при некорректных данных расписания или окна доступности.
	// Такие данные не должны попадать в систему; валидация здесь — защитная.
	ErrInvalidConfiguration = errors.New("domain: invalid configuration")
)
