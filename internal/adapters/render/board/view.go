package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.screen == screenDashboard {
		body = m.viewDashboard()
	} else {
		body = m.viewDetail()
	}

	lines := []string{body}
	if overlay := m.viewOverlay(); overlay != "" {
		lines = append(lines, overlay)
	}
	if m.errMessage != "" {
		lines = append(lines, m.styles.errMessage.Render(m.errMessage))
	}
	lines = append(lines, m.styles.help.Render(m.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDashboard() string {
	lines := []string{
		m.styles.title.Render("AI Products"),
		m.styles.header.Render(fmt.Sprintf("products: %d", len(m.snapshot.Products))),
		"",
	}

	if len(m.snapshot.Products) == 0 {
		lines = append(lines, m.styles.empty.Render("No products yet. Press n to add your first service."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, product := range m.snapshot.Products {
		marker := "  "
		style := m.styles.product
		if i == m.cursor {
			marker = "> "
			style = m.styles.cursor
		}

		count := m.snapshot.LinkCount(product.ID)
		line := fmt.Sprintf("%s%s (%d accounts)", marker, product.Name, count)
		if product.Description != "" {
			line += m.styles.detail.Render("  — " + product.Description)
		}
		lines = append(lines, style.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDetail() string {
	product, ok := m.snapshot.Product(m.productID)
	if !ok {
		return m.styles.empty.Render("Product not found.")
	}

	lines := []string{
		m.styles.title.Render(product.Name),
	}
	if product.Description != "" {
		lines = append(lines, m.styles.header.Render(product.Description))
	}
	lines = append(lines, "", m.styles.header.Render("Linked Accounts"))

	rows := m.rows()
	if len(rows) == 0 {
		lines = append(lines, m.styles.empty.Render("No accounts linked yet. Press a to add an email."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	now := m.clock.Now()
	for i, row := range rows {
		marker := "  "
		if i == m.rowCursor {
			marker = "> "
		}
		lines = append(lines, marker+m.viewAccountRow(row, now))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewAccountRow(row domain.EnrichedAccount, now time.Time) string {
	badge := m.styles.badge.Inherit(m.styles.active).Render("[active]")
	timer := m.styles.ready.Render("ready to start")

	if row.Status == domain.StatusCooldown {
		badge = m.styles.badge.Inherit(m.styles.cooldown).Render("[cooldown]")
		countdown := domain.ComputeCountdown(row.CountdownEndAt, now)
		timer = m.styles.countdown.Render(countdown.Formatted)
	}

	return fmt.Sprintf("%s %s %s", row.Email, badge, timer)
}

func (m Model) viewOverlay() string {
	switch m.mode {
	case modeNewProduct, modeEditProduct:
		title := "New product"
		if m.mode == modeEditProduct {
			title = "Edit product"
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.prompt.Render(title),
			"Name: "+m.nameInput.View(),
			"Description: "+m.descInput.View(),
		)
	case modeLinkEmail:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.prompt.Render("Link account"),
			"Email: "+m.emailInput.View(),
		)
	case modePickDays:
		choices := make([]string, 0, len(cooldownDayChoices))
		for i, days := range cooldownDayChoices {
			label := fmt.Sprintf("%dd", days)
			if i == m.dayIndex {
				label = m.styles.cursor.Render("[" + label + "]")
			}
			choices = append(choices, label)
		}
		return m.styles.prompt.Render("Cooldown: ") + strings.Join(choices, " ")
	case modeConfirmDelete:
		product, _ := m.snapshot.Product(m.productID)
		return m.styles.prompt.Render(fmt.Sprintf("Delete %s? This unlinks all accounts. (y/N)", product.Name))
	case modeConfirmUnlink:
		row, _ := m.selectedRow()
		return m.styles.prompt.Render(fmt.Sprintf("Remove %s from this product? (y/N)", row.Email))
	default:
		return ""
	}
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeNewProduct, modeEditProduct:
		return "enter/tab: next field • enter on description: save • esc: cancel"
	case modeLinkEmail:
		return "enter: link • esc: cancel"
	case modePickDays:
		return "←/→: choose days • enter: start • esc: cancel"
	case modeConfirmDelete, modeConfirmUnlink:
		return "y: confirm • any other key: cancel"
	}

	if m.screen == screenDashboard {
		return "↑/↓: move • enter: open • n: new product • q: quit"
	}

	return "↑/↓: move • a: add account • s: start cooldown • r: reset • u: unlink • e: edit • d: delete • b: back • q: quit"
}
