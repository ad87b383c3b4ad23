package dialog

import "errors"

// Ошибки координатора
var (
	// ErrDialogOpen — попытка открыть диалог, когда другой уже активен
	ErrDialogOpen = errors.New("another dialog is already open")

	// ErrNoEntity — открытие edit/view без id записи
	ErrNoEntity = errors.New("no entity selected")
)

// Mode — какой диалог активен
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreating
	ModeEditing
	ModeViewing
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	case ModeViewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Coordinator следит, чтобы в каждый момент был открыт не более чем один
// диалог. Для edit/view сначала фиксируется выбранная запись и только
// потом переключается режим, чтобы диалог не открылся без записи.
type Coordinator struct {
	selectedID string
	mode       Mode
}

// New создает координатор в закрытом состоянии
func New() *Coordinator {
	return &Coordinator{mode: ModeClosed}
}

// Mode возвращает активный режим
func (c *Coordinator) Mode() Mode { return c.mode }

// SelectedID возвращает id записи, с которой работает активный диалог
func (c *Coordinator) SelectedID() string { return c.selectedID }

// OpenCreate открывает диалог создания
func (c *Coordinator) OpenCreate() error {
	if c.mode != ModeClosed {
		return ErrDialogOpen
	}
	c.mode = ModeCreating
	return nil
}

// OpenEdit открывает диалог редактирования записи id
func (c *Coordinator) OpenEdit(id string) error {
	return c.openFor(ModeEditing, id)
}

// OpenView открывает диалог просмотра записи id
func (c *Coordinator) OpenView(id string) error {
	return c.openFor(ModeViewing, id)
}

// Close закрывает активный диалог и сбрасывает выбранную запись.
// Вызывается и при отмене, и после успешного submit.
func (c *Coordinator) Close() {
	c.mode = ModeClosed
	c.selectedID = ""
}

func (c *Coordinator) openFor(mode Mode, id string) error {
	if c.mode != ModeClosed {
		return ErrDialogOpen
	}
	if id == "" {
		return ErrNoEntity
	}
	// Сначала выбранная запись, затем режим
	c.selectedID = id
	c.mode = mode
	return nil
}
