package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/iocli"
)

// promptDraft запрашивает значения всех полей схемы по очереди.
// Пустой ввод оставляет текущее значение черновика (default при
// создании, значение записи при правке).
func promptDraft(io iocli.IO, d *form.Draft) error {
	for _, f := range d.Schema().Fields {
		value, err := io.ReadInput(fieldPrompt(f, d.Get(f.Name)))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Label, err)
		}
		if value == "" {
			continue
		}
		if err := d.Set(f.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// fieldPrompt собирает подпись поля: варианты для select, текущее
// значение в квадратных скобках, пометка required
func fieldPrompt(f form.Field, current string) string {
	var b strings.Builder
	b.WriteString(f.Label)
	if len(f.Options) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(f.Options, "/"))
		b.WriteString(")")
	}
	if current != "" {
		b.WriteString(" [")
		b.WriteString(current)
		b.WriteString("]")
	} else if !f.Required {
		b.WriteString(" (optional)")
	}
	b.WriteString(": ")
	return b.String()
}

// render выполняет шаблон, печатая результат в io
func (c *Cli) render(tmpl *template.Template, data any) error {
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return nil
}

// mustTemplate парсит шаблон с общим набором функций
func mustTemplate(name, text string, funcs template.FuncMap) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// imagePart читает локальный файл для multipart поля image.
// Пустой путь означает "без файла".
func imagePart(path string) (*api.FilePart, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return &api.FilePart{
		Field:   "image",
		Name:    filepath.Base(path),
		Content: content,
	}, nil
}

// jsonField сериализует значение в JSON строку для multipart поля
func jsonField(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
