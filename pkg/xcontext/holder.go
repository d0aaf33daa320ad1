package xcontext

import "context"

type (
	errorHolderKey    struct{}
	responseHolderKey struct{}
)

type errorHolder struct {
	err error
}

type responseHolder struct {
	resp any
}

// WithErrorHolder and WithResponseHolder install mutable slots so that
// closers registered on the router can observe what the handler produced.
// They are set up once per request by the router.
func WithErrorHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, errorHolderKey{}, &errorHolder{})
}

func WithResponseHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseHolderKey{}, &responseHolder{})
}

func SetError(ctx context.Context, err error) {
	if holder, ok := ctx.Value(errorHolderKey{}).(*errorHolder); ok {
		holder.err = err
	}
}

func Error(ctx context.Context) error {
	if holder, ok := ctx.Value(errorHolderKey{}).(*errorHolder); ok {
		return holder.err
	}

	return nil
}

func SetResponse(ctx context.Context, resp any) {
	if holder, ok := ctx.Value(responseHolderKey{}).(*responseHolder); ok {
		holder.resp = resp
	}
}

func GetResponse(ctx context.Context) any {
	if holder, ok := ctx.Value(responseHolderKey{}).(*responseHolder); ok {
		return holder.resp
	}

	return nil
}
