package memberservice

// Member модель члена клуба из MemberService
type Member struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Tier        string `json:"tier"` // Уровень членства (standard, gold, platinum)
	Active      bool   `json:"active"`
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
