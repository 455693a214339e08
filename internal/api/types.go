package api

// Account is a bank account the user can link a goal to.
type Account struct {
	ID              int64  `json:"id"`
	AccountAlias    string `json:"accountAlias"`
	AccountNumber   string `json:"accountNumber"`
	AccountNickname string `json:"accountNickname"`
	Main            bool   `json:"main"`
}

// Product is a recommended financial product from the backend.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MaxRate     float64 `json:"maxRate"`
	Period      string  `json:"period"`
	Link        string  `json:"link"`
}
