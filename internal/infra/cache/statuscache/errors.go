package statuscache

import "errors"

var (
	// ErrCacheMiss возвращается, когда снимка нет в кеше
	ErrCacheMiss = errors.New("statuscache: cache miss")

	// ErrCacheUnavailable возвращается при ошибках соединения с Redis
	ErrCacheUnavailable = errors.New("statuscache: cache unavailable")
)
