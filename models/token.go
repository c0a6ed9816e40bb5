package models

// Token is the access/refresh pair issued by login and invitation acceptance.
// Both strings are opaque to the client and always stored or cleared together.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

func (t Token) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}
