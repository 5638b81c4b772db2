package http

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)
