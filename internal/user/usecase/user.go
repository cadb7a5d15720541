package usecase

import (
	"context"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/encrypter"
	"pharmaclear-api/pkg/postgre"
	"pharmaclear-api/pkg/scope"
)

func (uc *implUsecase) Register(ctx context.Context, input user.RegisterInput) (model.User, error) {
	_, err := uc.repo.GetByEmail(ctx, input.Email)
	if err == nil {
		return model.User{}, user.ErrEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.Register: %v", err)
		return model.User{}, err
	}

	hashed, err := encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register: %v", err)
		return model.User{}, err
	}

	created, err := uc.repo.Create(ctx, user.CreateOptions{
		ID:             postgre.NewUUID(),
		Email:          input.Email,
		HashedPassword: hashed,
		FullName:       input.FullName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register: %v", err)
		return model.User{}, err
	}

	return created, nil
}

func (uc *implUsecase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Login: %v", err)
		return user.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(input.Password, u.HashedPassword) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID: u.ID,
		Email:  u.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Login: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (uc *implUsecase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Me: %v", err)
		return model.User{}, err
	}
	return u, nil
}
