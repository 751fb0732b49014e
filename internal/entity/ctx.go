package entity

import "context"

type CtxKeyUser struct{}

type CtxKeyIP struct{}

func SetUserToContext(ctx context.Context, user Admin) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func UserFromContext(ctx context.Context) (Admin, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(Admin)
	if !ok {
		return Admin{}, ErrUnauthorized
	}

	return user, nil
}
