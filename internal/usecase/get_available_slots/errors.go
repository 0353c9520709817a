package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidShape возвращается при внутренне несогласованной форме запроса
	ErrInvalidShape = errors.New("get_available_slots: invalid booking shape")

	// ErrSlotOutsideSchedule возвращается, когда запрошенное время одиночного слота
	// не попадает ни в один интервал открытия
	ErrSlotOutsideSchedule = errors.New("get_available_slots: requested slot is outside the opening schedule")

	// ErrHalfDayNotSupported возвращается, когда расписание услуги нигде не
	// содержит интервала длиной в полдня
	ErrHalfDayNotSupported = errors.New("get_available_slots: service schedule does not fit a half-day booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
