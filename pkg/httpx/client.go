package httpx

import (
	"net/http"
	"time"
)

// NewClient возвращает HTTP-клиент, логирующий запросы и ответы.
func NewClient(timeout time.Duration, opts ...Option) *http.Client {
	return &http.Client{
		//nolint:exhaustruct
		Timeout:   timeout,
		Transport: NewLoggingRoundTripper(http.DefaultTransport, opts...),
	}
}
