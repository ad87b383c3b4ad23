package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/dialog"
	"github.com/lilfaithontrack/abigail-admin/internal/client/iocli"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/client/session"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

// Cli — интерактивная админка CMS. Держит по одному store на каждый
// вид ресурса и один координатор диалогов: открыть второй диалог,
// пока первый не закрыт, нельзя.
type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	session   session.Session
	dialog    *dialog.Coordinator
	funcs     template.FuncMap

	blogs      kind[models.Blog]
	services   kind[models.Service]
	categories kind[models.Category]
	clients    kind[models.Client]
	equipment  kind[models.Equipment]
	gallery    kind[models.GalleryImage]
}

// New создает Cli поверх API клиента и сессии. uploadsBase — база URL
// для ссылок на загруженные изображения.
func New(io iocli.IO, apiClient *api.Client, sess session.Session, uploadsBase string) *Cli {
	c := &Cli{
		io:        io,
		apiClient: apiClient,
		session:   sess,
		dialog:    dialog.New(),
		funcs:     templateFuncs(uploadsBase),
	}

	c.blogs = newBlogKind(c, resource.NewStore(api.NewResource[models.Blog](apiClient, api.ResourceConfig{
		Name:           "blog post",
		CollectionPath: "/blogs",
		Protected:      true,
	})))
	c.services = newServiceKind(c, resource.NewStore(api.NewResource[models.Service](apiClient, api.ResourceConfig{
		Name:           "service",
		CollectionPath: "/service",
		CreatePath:     "/service/create",
	})))
	c.categories = newCategoryKind(c, resource.NewStore(api.NewResource[models.Category](apiClient, api.ResourceConfig{
		Name:           "category",
		CollectionPath: "/categories",
		ListPath:       "/categories/hierarchy",
		CreatePath:     "/categories/create",
	})))
	c.clients = newClientKind(c, resource.NewStore(api.NewResource[models.Client](apiClient, api.ResourceConfig{
		Name:           "client",
		CollectionPath: "/clients",
	})))
	c.equipment = newEquipmentKind(c, resource.NewStore(api.NewResource[models.Equipment](apiClient, api.ResourceConfig{
		Name:           "equipment",
		CollectionPath: "/equipment",
	})))
	c.gallery = newGalleryKind(c, resource.NewStore(api.NewResource[models.GalleryImage](apiClient, api.ResourceConfig{
		Name:           "gallery image",
		CollectionPath: "/gallery",
		ListPath:       "/gallery?status=active",
		CreatePath:     "/gallery/create",
	})))

	return c
}

// Run выполняет одну команду админки
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "dashboard":
		return c.runDashboard(ctx)
	case "list", "get", "add", "edit", "delete":
		return c.runKindCommand(ctx, command, args)
	case "view":
		return c.runKindCommand(ctx, "get", args)
	case "create":
		return c.runKindCommand(ctx, "add", args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runKindCommand направляет команду вида "list blogs" в нужный store
func (c *Cli) runKindCommand(ctx context.Context, action string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing resource kind. Usage: abigail-admin %s <blogs|services|categories|clients|equipment|gallery>", action)
	}

	rest := args[1:]

	switch args[0] {
	case "blog", "blogs":
		return runAction(ctx, c, c.blogs, action, rest)
	case "service", "services":
		return runAction(ctx, c, c.services, action, rest)
	case "category", "categories":
		return runAction(ctx, c, c.categories, action, rest)
	case "client", "clients":
		return runAction(ctx, c, c.clients, action, rest)
	case "equipment":
		return runAction(ctx, c, c.equipment, action, rest)
	case "gallery":
		return runAction(ctx, c, c.gallery, action, rest)
	default:
		return fmt.Errorf("unknown resource kind: %s. Use: blogs, services, categories, clients, equipment, or gallery", args[0])
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println(usageText)
}
