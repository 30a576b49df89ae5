package dto

// TokenRequest representa a requisição de login
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"senha-forte"`
}

// TokenPairResponse devolve os tokens de acesso e de renovação
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest representa a requisição de renovação do token de acesso
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// AccessTokenResponse devolve um novo token de acesso
type AccessTokenResponse struct {
	Access string `json:"access"`
}
