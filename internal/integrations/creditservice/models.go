package creditservice

// Credit модель предоплаченной карты из CreditService
type Credit struct {
	ID               string `json:"id"`
	UserID           int64  `json:"user_id"`
	RemainingBalance int    `json:"remaining_balance"` // Остаток в слотах
}

// ErrorResponse модель ошибки от CreditService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
