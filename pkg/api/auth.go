package api

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (хешируется на сервере, bcrypt)
	Timezone string `json:"timezone"` // IANA timezone, используется для расчета streak
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ с access токеном
type AuthResponse struct {
	AccessToken      string `json:"accessToken"`      // JWT access token
	ExpiresInSeconds int64  `json:"expiresInSeconds"` // время жизни токена в секундах
	UserID           string `json:"userId"`           // UUID пользователя
	Email            string `json:"email"`
	Timezone         string `json:"timezone"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // описание ошибки
}
