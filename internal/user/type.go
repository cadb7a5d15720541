package user

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	TokenType   string
}

type CreateOptions struct {
	ID             string
	Email          string
	HashedPassword string
	FullName       string
}
