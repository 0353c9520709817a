package create_bulk_booking

import "errors"

var (
	// ErrEmptySubmission возвращается при пакетном запросе без единого слота
	ErrEmptySubmission = errors.New("create_bulk_booking: empty submission")

	// ErrInsufficientCredit возвращается, когда остатка предоплаченной карты
	// не хватает на все слоты запроса
	ErrInsufficientCredit = errors.New("create_bulk_booking: insufficient prepaid credit")

	// ErrCreditNotFound возвращается, когда предоплаченная карта не найдена
	ErrCreditNotFound = errors.New("create_bulk_booking: prepaid credit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_bulk_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_bulk_booking: internal error")
)
