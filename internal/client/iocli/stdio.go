package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct{}

func NewStdio() IO {
	return &Stdio{}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	fd := int(os.Stdin.Fd())
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// Confirm задает вопрос yes/no. Подтверждением считается только
// явное yes/y.
func (s *Stdio) Confirm(prompt string) (bool, error) {
	answer, err := s.ReadInput(prompt)
	if err != nil {
		return false, err
	}
	return ParseConfirm(answer), nil
}

// ParseConfirm разбирает ответ пользователя на yes/no вопрос
func ParseConfirm(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

func (s *Stdio) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}
