package errorx

type Code int

const (
	// Common codes
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Unauthenticated Code = 100004
	AlreadyExists   Code = 100005
	Internal        Code = 100006
	Unavailable     Code = 100007
	NotImplemented  Code = 100008
	TooManyRequests Code = 100009

	// Activity codes
	OutOfOrderActivity Code = 200001
)
