package memberservice

import "errors"

var (
	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrMembershipInactive возвращается, когда членство приостановлено
	ErrMembershipInactive = errors.New("membership is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("memberservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("memberservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что MemberService недоступен и таймер запускается
	// по данным оператора без проверки членства
	ErrServiceDegraded = errors.New("memberservice unavailable: graceful degradation applied")
)
