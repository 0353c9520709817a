package creditservice

import "errors"

var (
	// ErrCreditNotFound возвращается, когда предоплаченная карта не найдена
	ErrCreditNotFound = errors.New("prepaid credit not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("creditservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("creditservice client: invalid response")
)
