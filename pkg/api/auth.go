package api

// LoginRequest представляет запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email"`    // email администратора
	Password string `json:"password"` // пароль
}

// LoginResponse представляет ответ с токеном доступа
type LoginResponse struct {
	Token   string `json:"token"`             // bearer token для привилегированных запросов
	Message string `json:"message,omitempty"` // опциональное сообщение сервера
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
