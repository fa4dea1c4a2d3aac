package service

// RequestMeta carries caller metadata supplied by the transport layer.
// Services record it in logs and audit entries but never authorize on it.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
