package middlewares

const (
	CtxRequestID = "request_id"

	// session user snapshot, set by RequireAuth
	ctxUserKey = "auth.user"
)
