package board

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/bnema/ai-accounts-manager/internal/ports"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenDashboard screen = iota
	screenDetail
)

type mode int

const (
	modeBrowse mode = iota
	modeNewProduct
	modeEditProduct
	modeLinkEmail
	modePickDays
	modeConfirmDelete
	modeConfirmUnlink
)

// The picker offers common durations; the service itself accepts any day
// count in [1,365].
var cooldownDayChoices = []int{1, 3, 7, 14, 30}

type tickMsg time.Time

// Model is the interactive board: a dashboard of products and a per-product
// detail view with live countdowns. A one-second tick refreshes the snapshot
// and auto-resets any displayed account whose cooldown has run out.
type Model struct {
	svc    *application.Service
	clock  ports.Clock
	styles styles

	screen    screen
	mode      mode
	snapshot  application.Snapshot
	cursor    int
	rowCursor int
	productID domain.ProductID

	nameInput   textinput.Model
	descInput   textinput.Model
	emailInput  textinput.Model
	editingDesc bool
	dayIndex    int

	errMessage string
	quitting   bool
}

func New(svc *application.Service, clock ports.Clock) Model {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	name := textinput.New()
	name.Placeholder = "e.g. ChatGPT Plus"
	name.CharLimit = 120

	desc := textinput.New()
	desc.Placeholder = "Brief description..."
	desc.CharLimit = 240

	email := textinput.New()
	email.Placeholder = "user@example.com"
	email.CharLimit = 120

	return Model{
		svc:        svc,
		clock:      clock,
		styles:     newStyles(),
		snapshot:   svc.Snapshot(),
		nameInput:  name,
		descInput:  desc,
		emailInput: email,
	}
}

// Run starts the board program on the alternate screen.
func Run(svc *application.Service, clock ports.Clock) error {
	p := tea.NewProgram(New(svc, clock), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return scheduleTick()
}

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		if m.screen == screenDetail {
			m.autoResetExpired()
		}
		return m, scheduleTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeBrowse:
		return m.handleBrowseKey(msg)
	case modeNewProduct, modeEditProduct:
		return m.handleProductFormKey(msg)
	case modeLinkEmail:
		return m.handleEmailFormKey(msg)
	case modePickDays:
		return m.handlePickDaysKey(msg)
	case modeConfirmDelete, modeConfirmUnlink:
		return m.handleConfirmKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMessage = ""

	if m.screen == screenDashboard {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.snapshot.Products)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.snapshot.Products) {
				m.productID = m.snapshot.Products[m.cursor].ID
				m.screen = screenDetail
				m.rowCursor = 0
			}
		case "n":
			m.mode = modeNewProduct
			m.nameInput.SetValue("")
			m.descInput.SetValue("")
			m.editingDesc = false
			m.nameInput.Focus()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc", "b":
		m.screen = screenDashboard
	case "up", "k":
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case "down", "j":
		if m.rowCursor < len(m.rows())-1 {
			m.rowCursor++
		}
	case "a":
		m.mode = modeLinkEmail
		m.emailInput.SetValue("")
		m.emailInput.Focus()
	case "e":
		if product, ok := m.snapshot.Product(m.productID); ok {
			m.mode = modeEditProduct
			m.nameInput.SetValue(product.Name)
			m.descInput.SetValue(product.Description)
			m.editingDesc = false
			m.nameInput.Focus()
		}
	case "d":
		m.mode = modeConfirmDelete
	case "u":
		if _, ok := m.selectedRow(); ok {
			m.mode = modeConfirmUnlink
		}
	case "s":
		if row, ok := m.selectedRow(); ok && row.Status == domain.StatusActive {
			m.mode = modePickDays
			m.dayIndex = len(cooldownDayChoices) - 1
		}
	case "r":
		if row, ok := m.selectedRow(); ok && row.Status == domain.StatusCooldown {
			m.apply(m.svc.ResetCooldown(context.Background(), row.Account.ID))
		}
	}

	return m, nil
}

func (m Model) handleProductFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.blurInputs()
		return m, nil
	case tea.KeyTab:
		m.toggleProductField()
		return m, nil
	case tea.KeyEnter:
		if !m.editingDesc {
			m.toggleProductField()
			return m, nil
		}
		return m.submitProductForm(), nil
	}

	var cmd tea.Cmd
	if m.editingDesc {
		m.descInput, cmd = m.descInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleProductField() {
	m.editingDesc = !m.editingDesc
	if m.editingDesc {
		m.nameInput.Blur()
		m.descInput.Focus()
	} else {
		m.descInput.Blur()
		m.nameInput.Focus()
	}
}

func (m Model) submitProductForm() Model {
	name := m.nameInput.Value()
	if err := application.ValidateProductName(name); err != nil {
		m.errMessage = err.Error()
		return m
	}

	ctx := context.Background()
	if m.mode == modeEditProduct {
		m.apply(m.svc.UpdateProduct(ctx, m.productID, name, m.descInput.Value()))
	} else {
		_, err := m.svc.AddProduct(ctx, name, m.descInput.Value())
		m.apply(err)
	}

	m.mode = modeBrowse
	m.blurInputs()
	return m
}

func (m Model) handleEmailFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.blurInputs()
		return m, nil
	case tea.KeyEnter:
		email := m.emailInput.Value()
		if err := application.ValidateEmail(email); err != nil {
			m.errMessage = err.Error()
			return m, nil
		}
		m.apply(m.svc.LinkAccountToProduct(context.Background(), m.productID, strings.TrimSpace(email)))
		m.mode = modeBrowse
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

func (m Model) handlePickDaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
	case "left", "h":
		if m.dayIndex > 0 {
			m.dayIndex--
		}
	case "right", "l":
		if m.dayIndex < len(cooldownDayChoices)-1 {
			m.dayIndex++
		}
	case "enter":
		if row, ok := m.selectedRow(); ok {
			m.apply(m.svc.StartCooldown(context.Background(), row.Account.ID, cooldownDayChoices[m.dayIndex]))
		}
		m.mode = modeBrowse
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := msg.String() == "y" || msg.String() == "Y"
	mode := m.mode
	m.mode = modeBrowse

	if !confirmed {
		return m, nil
	}

	ctx := context.Background()
	switch mode {
	case modeConfirmDelete:
		m.apply(m.svc.DeleteProduct(ctx, m.productID))
		m.screen = screenDashboard
	case modeConfirmUnlink:
		if row, ok := m.selectedRow(); ok {
			m.apply(m.svc.UnlinkAccount(ctx, row.RelationID))
		}
	}

	return m, nil
}

func (m *Model) apply(err error) {
	if err != nil {
		m.errMessage = err.Error()
		return
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.snapshot = m.svc.Snapshot()

	if m.cursor >= len(m.snapshot.Products) {
		m.cursor = max(0, len(m.snapshot.Products)-1)
	}
	if rows := len(m.rows()); m.rowCursor >= rows {
		m.rowCursor = max(0, rows-1)
	}
}

// autoResetExpired applies the automatic cooldown→active transition for the
// accounts on screen. Resetting flips the status, so each expiry fires the
// reset exactly once.
func (m *Model) autoResetExpired() {
	now := m.clock.Now()
	for _, row := range m.rows() {
		if row.CooldownExpired(now) {
			m.apply(m.svc.ResetCooldown(context.Background(), row.Account.ID))
		}
	}
}

func (m Model) rows() []domain.EnrichedAccount {
	return m.snapshot.LinkedAccounts(m.productID)
}

func (m Model) selectedRow() (domain.EnrichedAccount, bool) {
	rows := m.rows()
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return domain.EnrichedAccount{}, false
	}

	return rows[m.rowCursor], true
}

func (m *Model) blurInputs() {
	m.nameInput.Blur()
	m.descInput.Blur()
	m.emailInput.Blur()
}
