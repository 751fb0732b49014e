package entity

type UserTokens struct {
	AccessToken string `json:"accessToken"`
	User        Admin  `json:"user"`
}
