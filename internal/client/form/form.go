package form

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType определяет способ ввода и сериализации поля
type FieldType int

const (
	// TextField — однострочный текст
	TextField FieldType = iota
	// LongTextField — многострочный текст (описания, HTML контент)
	LongTextField
	// ListField — список строк, редактируемый как строка через запятую
	ListField
	// NumberField — целое число
	NumberField
	// DecimalField — число с дробной частью (цены)
	DecimalField
	// BoolField — флаг yes/no
	BoolField
	// SelectField — выбор из фиксированного набора
	SelectField
	// FileField — путь к локальному файлу для загрузки
	FileField
)

// Field описывает одно поле формы
type Field struct {
	Name     string    // ключ поля в draft и payload
	Label    string    // подпись для пользователя и сообщений об ошибках
	Type     FieldType
	Required bool
	Default  string   // значение по умолчанию в строковом представлении
	Options  []string // допустимые значения для SelectField
}

// Schema — декларативное описание формы одного вида ресурса
type Schema struct {
	Kind   string // имя ресурса для сообщений
	Fields []Field
}

// Field ищет поле схемы по имени
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidationError перечисляет обязательные поля, оставшиеся пустыми.
// Такая форма не отправляется: сетевой запрос не выполняется вовсе.
type ValidationError struct {
	Missing []string // подписи пропущенных полей
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Missing, ", "))
}

// Draft держит черновик значений формы. Все значения хранятся в
// строковом редактируемом представлении; списки — строкой через запятую.
// Черновики create и edit всегда отдельные экземпляры.
type Draft struct {
	schema Schema
	values map[string]string
}

// NewDraft создает черновик, заполненный значениями по умолчанию
func NewDraft(schema Schema) *Draft {
	d := &Draft{
		schema: schema,
		values: make(map[string]string, len(schema.Fields)),
	}
	d.Reset()
	return d
}

// Schema возвращает схему черновика
func (d *Draft) Schema() Schema { return d.schema }

// Reset возвращает черновик к значениям по умолчанию
func (d *Draft) Reset() {
	clear(d.values)
	for _, f := range d.schema.Fields {
		d.values[f.Name] = f.Default
	}
}

// Set записывает значение поля
func (d *Draft) Set(name, value string) error {
	field, ok := d.schema.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q for %s", name, d.schema.Kind)
	}

	value = strings.TrimSpace(value)
	if field.Type == SelectField && value != "" && !contains(field.Options, value) {
		return fmt.Errorf("invalid value %q for %s: expected one of %s",
			value, field.Label, strings.Join(field.Options, ", "))
	}

	d.values[name] = value
	return nil
}

// Get возвращает строковое значение поля
func (d *Draft) Get(name string) string {
	return d.values[name]
}

// List возвращает значение ListField, разобранное в слайс
func (d *Draft) List(name string) []string {
	return SplitList(d.values[name])
}

// Bool интерпретирует значение поля как флаг
func (d *Draft) Bool(name string) bool {
	switch strings.ToLower(d.values[name]) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

// Int возвращает значение поля как целое, 0 если не разобралось
func (d *Draft) Int(name string) int {
	n, err := strconv.Atoi(d.values[name])
	if err != nil {
		return 0
	}
	return n
}

// Float возвращает значение поля как float64, 0 если не разобралось
func (d *Draft) Float(name string) float64 {
	f, err := strconv.ParseFloat(d.values[name], 64)
	if err != nil {
		return 0
	}
	return f
}

// Validate синхронно проверяет обязательные поля.
// Возвращает *ValidationError, если хотя бы одно пустое.
func (d *Draft) Validate() error {
	var missing []string
	for _, f := range d.schema.Fields {
		if f.Required && strings.TrimSpace(d.values[f.Name]) == "" {
			missing = append(missing, f.Label)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Seed заполняет черновик значениями существующей записи для формы
// редактирования. Неизвестные ключи игнорируются.
func (d *Draft) Seed(values map[string]string) {
	for name, value := range values {
		if _, ok := d.schema.Field(name); ok {
			d.values[name] = value
		}
	}
}

// Values возвращает копию всех значений черновика
func (d *Draft) Values() map[string]string {
	out := make(map[string]string, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// SplitList разбирает редактируемое представление списка: значения
// через запятую, пробелы обрезаются, пустые элементы отбрасываются.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			items = append(items, value)
		}
	}
	return items
}

// JoinList собирает список обратно в редактируемое представление
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
