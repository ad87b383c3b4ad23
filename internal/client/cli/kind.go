package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/client/view"
)

// filterSpec связывает флаг командной строки с полем записи.
// Значение "all" (или пустое) отключает фильтр.
type filterSpec[T any] struct {
	flag  string
	field func(T) string
}

// kind описывает один вид ресурса: его store, схему формы и способ
// превращения черновика в тело запроса. Все пять действий
// (list/get/add/edit/delete) работают через этот дескриптор.
type kind[T resource.Entity] struct {
	name           string // единственное число, для сообщений
	store          *resource.Store[T]
	schema         form.Schema
	validateCreate func(d *form.Draft) error                // дополнительная проверка только при создании
	payload        func(d *form.Draft) (api.Payload, error) // черновик -> тело запроса
	seed           func(item T) map[string]string           // запись -> значения черновика для edit
	search         func(item T) []string                    // поля, по которым ищет --search
	find           func(items []T, id string) (*T, bool)    // поиск по id; nil — плоский Find в store
	filters        []filterSpec[T]
	summary        func(item T) []string  // строки, показываемые перед удалением
	stats          func(items []T) string // опциональная сводка под списком

	listTmpl   *template.Template
	detailTmpl *template.Template
}

// runAction выполняет одно действие над видом ресурса
func runAction[T resource.Entity](ctx context.Context, c *Cli, k kind[T], action string, args []string) error {
	switch action {
	case "list":
		return runList(ctx, c, k, args)
	case "get":
		id, err := requireID(k, action, args)
		if err != nil {
			return err
		}
		return runView(ctx, c, k, id)
	case "add":
		return runCreate(ctx, c, k)
	case "edit":
		id, err := requireID(k, action, args)
		if err != nil {
			return err
		}
		return runEdit(ctx, c, k, id)
	case "delete":
		id, err := requireID(k, action, args)
		if err != nil {
			return err
		}
		return runDelete(ctx, c, k, id)
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func requireID[T resource.Entity](k kind[T], action string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing %s ID. Usage: abigail-admin %s %s <id>", k.name, action, kindArg(k.name))
	}
	return args[0], nil
}

// kindArg восстанавливает аргумент команды из имени ресурса
func kindArg(name string) string {
	switch name {
	case "blog post":
		return "blog"
	case "gallery image":
		return "gallery"
	default:
		return name
	}
}

// pluralize — для сообщений об ошибках загрузки
func pluralize(name string) string {
	if name == "equipment" {
		return name
	}
	return name + "s"
}

type listOptions struct {
	search  string
	filters map[string]string
}

// parseListArgs разбирает флаги списка: --search <term> и фильтры вида
// --status <value>. Поддерживаются обе формы: "--flag value" и
// "--flag=value".
func parseListArgs[T resource.Entity](k kind[T], args []string) (listOptions, error) {
	opts := listOptions{filters: map[string]string{}}

	allowed := make([]string, 0, len(k.filters))
	for _, f := range k.filters {
		allowed = append(allowed, f.flag)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return opts, fmt.Errorf("unexpected argument: %s", arg)
		}

		name := strings.TrimPrefix(arg, "--")
		var value string
		if eq := strings.Index(name, "="); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
		} else {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("missing value for --%s", name)
			}
			i++
			value = args[i]
		}

		switch {
		case name == "search":
			opts.search = value
		case slices.Contains(allowed, name):
			opts.filters[name] = value
		default:
			return opts, fmt.Errorf("unknown flag --%s. Available filters: %s", name, strings.Join(allowed, ", "))
		}
	}

	return opts, nil
}

// runList загружает коллекцию и печатает её, применив поиск и фильтры.
// Фильтры объединяются по И: запись должна пройти все.
func runList[T resource.Entity](ctx context.Context, c *Cli, k kind[T], args []string) error {
	opts, err := parseListArgs(k, args)
	if err != nil {
		return err
	}

	if err := k.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load %s: %w", pluralize(k.name), err)
	}

	preds := make([]view.Predicate[T], 0, len(k.filters)+1)
	if opts.search != "" {
		preds = append(preds, view.Search(opts.search, k.search))
	}
	for _, f := range k.filters {
		if value, ok := opts.filters[f.flag]; ok {
			preds = append(preds, view.Equals(value, f.field))
		}
	}

	items := view.Apply(k.store.Items(), view.And(preds...))
	if err := c.render(k.listTmpl, items); err != nil {
		return err
	}

	if k.stats != nil && len(items) > 0 {
		c.io.Println(k.stats(items))
		c.io.Println()
	}
	return nil
}

// runView показывает полную карточку записи
func runView[T resource.Entity](ctx context.Context, c *Cli, k kind[T], id string) error {
	item, err := loadAndFind(ctx, k, id)
	if err != nil {
		return err
	}

	if err := c.dialog.OpenView(id); err != nil {
		return err
	}
	defer c.dialog.Close()

	return c.render(k.detailTmpl, item)
}

// runCreate открывает диалог создания, собирает черновик и отправляет
// его. Невалидная форма не отправляется: до сети дело не доходит.
func runCreate[T resource.Entity](ctx context.Context, c *Cli, k kind[T]) error {
	if err := c.dialog.OpenCreate(); err != nil {
		return err
	}
	defer c.dialog.Close()

	c.io.Printf("=== New %s ===\n", k.name)
	c.io.Println()

	draft := form.NewDraft(k.schema)
	if err := promptDraft(c.io, draft); err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	if k.validateCreate != nil {
		if err := k.validateCreate(draft); err != nil {
			return err
		}
	}

	payload, err := k.payload(draft)
	if err != nil {
		return err
	}

	created, err := k.store.Create(ctx, payload)
	if err != nil {
		return authHint(err)
	}

	c.io.Println()
	c.io.Printf("✓ %s created successfully!\n", capitalize(k.name))
	if created != nil {
		c.io.Printf("ID: %s\n", (*created).EntityID())
	}
	return nil
}

// runEdit открывает диалог правки: черновик заполняется текущими
// значениями записи, пустой ввод оставляет значение как есть.
func runEdit[T resource.Entity](ctx context.Context, c *Cli, k kind[T], id string) error {
	item, err := loadAndFind(ctx, k, id)
	if err != nil {
		return err
	}

	if err := c.dialog.OpenEdit(id); err != nil {
		return err
	}
	defer c.dialog.Close()

	c.io.Printf("=== Edit %s ===\n", k.name)
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	draft := form.NewDraft(k.schema)
	draft.Seed(k.seed(*item))
	if err := promptDraft(c.io, draft); err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	payload, err := k.payload(draft)
	if err != nil {
		return err
	}

	if _, err := k.store.Update(ctx, id, payload); err != nil {
		return authHint(err)
	}

	c.io.Println()
	c.io.Printf("✓ %s updated successfully!\n", capitalize(k.name))
	return nil
}

// runDelete показывает, что именно будет удалено, и спрашивает
// подтверждение. Без утвердительного ответа запрос не отправляется.
func runDelete[T resource.Entity](ctx context.Context, c *Cli, k kind[T], id string) error {
	item, err := loadAndFind(ctx, k, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== Delete %s ===\n", k.name)
	c.io.Println()
	c.io.Println("About to delete:")
	for _, line := range k.summary(*item) {
		c.io.Printf("  %s\n", line)
	}
	c.io.Println()

	confirmed, err := c.io.Confirm(fmt.Sprintf("Are you sure you want to delete this %s? (yes/no): ", k.name))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := k.store.Remove(ctx, id); err != nil {
		return authHint(err)
	}

	c.io.Println()
	c.io.Printf("✓ %s deleted successfully!\n", capitalize(k.name))
	return nil
}

// loadAndFind перечитывает коллекцию и ищет запись по id.
// Виды с вложенной структурой (категории) задают свой find,
// остальные ищут плоско по загруженной коллекции.
func loadAndFind[T resource.Entity](ctx context.Context, k kind[T], id string) (*T, error) {
	if err := k.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", pluralize(k.name), err)
	}

	var item *T
	var ok bool
	if k.find != nil {
		item, ok = k.find(k.store.Items(), id)
	} else {
		item, ok = k.store.Find(id)
	}
	if !ok {
		return nil, fmt.Errorf("%s not found with ID: %s", k.name, id)
	}
	return item, nil
}

// authHint дополняет ошибку отсутствия токена подсказкой про login
func authHint(err error) error {
	if errors.Is(err, api.ErrNotAuthenticated) {
		return fmt.Errorf("not authenticated. Please run 'abigail-admin login' first")
	}
	return err
}
