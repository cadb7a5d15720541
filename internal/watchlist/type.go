package watchlist

type CreateOptions struct {
	ID      string
	UserID  string
	Keyword string
}
