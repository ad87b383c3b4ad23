package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет минимально достаточный формат email.
// Авторитетная проверка учётных данных выполняется сервером.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail проверяет, что email похож на адрес почты
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidatePassword проверяет, что пароль не пустой.
// Политику сложности определяет сервер, клиент лишь не даёт отправить
// заведомо пустую форму.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
