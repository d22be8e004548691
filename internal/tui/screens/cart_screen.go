package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mobileking0827/VossShop/internal/cart"
	"github.com/mobileking0827/VossShop/internal/domain"
	"github.com/mobileking0827/VossShop/internal/money"
	"github.com/mobileking0827/VossShop/internal/tui/shared"
	"go.uber.org/zap"
)

// editMode is the cart screen's view state. It is never persisted; every
// CartScreen starts out browsing.
type editMode int

const (
	modeBrowsing editMode = iota
	modeEditing
)

// editLabel maps the mode to the label of the edit action.
func editLabel(m editMode) string {
	if m == modeEditing {
		return "Done"
	}
	return "Edit"
}

// deleteEnabled reports whether rows expose their delete control.
func deleteEnabled(m editMode) bool {
	return m == modeEditing
}

func toggled(m editMode) editMode {
	if m == modeEditing {
		return modeBrowsing
	}
	return modeEditing
}

// cartRow is a render-ready line: product name plus formatted price.
type cartRow struct {
	name  string
	price string
}

func newCartRow(p domain.Product, prices money.Formatter) cartRow {
	formatted, ok := prices.Format(p.Price)
	if !ok {
		formatted = ""
	}
	return cartRow{name: p.Name, price: formatted}
}

// CartScreen lists the cart's entries with a bottom-anchored checkout
// button, keeps the title and the button label in sync with the cart, and
// supports row deletion in editing mode. It holds the cart by pointer and
// does not own its lifetime; cancel dismisses without touching it.
type CartScreen struct {
	cart   *cart.Cart
	prices money.Formatter
	logger *zap.Logger

	keys   cartKeyMap
	styles styles

	mode   editMode
	cursor int
	width  int
	height int
}

// NewCartScreen builds the screen around an existing cart. The cart is
// required; passing nil is a programming error and panics.
func NewCartScreen(c *cart.Cart, prices money.Formatter, logger *zap.Logger) CartScreen {
	if c == nil {
		panic("screens: CartScreen requires a cart")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return CartScreen{
		cart:   c,
		prices: prices,
		logger: logger,
		keys:   newCartKeyMap(),
		styles: newStyles(),
	}
}

func (s CartScreen) Init() tea.Cmd {
	return nil
}

func (s CartScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s CartScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keys.Cancel):
		// Dismiss without mutating the cart.
		return s, dismissCart(false)

	case key.Matches(msg, s.keys.Checkout):
		s.logger.Info("checkout requested",
			zap.Int("items", s.cart.Count()),
			zap.Int64("total_cents", int64(s.cart.TotalPrice())),
		)
		return s, dismissCart(true)

	case key.Matches(msg, s.keys.ToggleEdit):
		s.mode = toggled(s.mode)
		return s, nil

	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case key.Matches(msg, s.keys.Down):
		if s.cursor < s.cart.Count()-1 {
			s.cursor++
		}
		return s, nil

	case key.Matches(msg, s.keys.Delete):
		return s.deleteUnderCursor()
	}

	return s, nil
}

// deleteUnderCursor removes the entry under the cursor from the cart. The
// next render draws one row fewer and refreshed totals, so the visible
// list and the cart cannot drift apart.
func (s CartScreen) deleteUnderCursor() (tea.Model, tea.Cmd) {
	if !deleteEnabled(s.mode) || s.cart.Count() == 0 {
		return s, nil
	}

	removed, err := s.cart.RemoveAt(s.cursor)
	if err != nil {
		// Cursor clamping keeps the index valid; treat a miss as a no-op.
		return s, nil
	}

	s.logger.Info("removed cart entry",
		zap.String("line_id", removed.LineID),
		zap.String("product", removed.Product.Name),
		zap.Int("remaining", s.cart.Count()),
	)

	if s.cursor >= s.cart.Count() && s.cursor > 0 {
		s.cursor--
	}
	return s, nil
}

func dismissCart(checkedOut bool) tea.Cmd {
	return func() tea.Msg {
		return shared.CartDismissedMsg{CheckedOut: checkedOut}
	}
}

func (s CartScreen) View() string {
	header := s.viewHeader()
	body := s.viewBody()
	footer := s.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (s CartScreen) viewHeader() string {
	title := s.styles.title.Render(fmt.Sprintf("Your Cart (%d)", s.cart.Count()))
	action := s.styles.action.Render(fmt.Sprintf("[e] %s", editLabel(s.mode)))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", action)
}

func (s CartScreen) viewBody() string {
	entries := s.cart.Entries()
	if len(entries) == 0 {
		return s.styles.empty.Render("Your cart is empty.")
	}

	var b strings.Builder
	for i, e := range entries {
		row := newCartRow(e.Product, s.prices)

		cursor := " "
		if s.cursor == i {
			cursor = ">"
		}
		control := "   "
		if deleteEnabled(s.mode) {
			control = "[-]"
		}

		line := fmt.Sprintf("%s %s %-24s %10s", cursor, control, row.name, row.price)
		if s.cursor == i {
			line = s.styles.selectedRow.Render(line)
		} else {
			line = s.styles.row.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (s CartScreen) viewFooter() string {
	total, ok := s.prices.Format(s.cart.TotalPrice())
	if !ok {
		total = ""
	}

	button := s.styles.checkout.Render(fmt.Sprintf("Check out (%s)", total))
	help := s.styles.help.Render(s.helpLine())

	// The leading blank line keeps the last row clear of the button.
	return lipgloss.JoinVertical(lipgloss.Left, "", s.styles.band.Render(button), help)
}

func (s CartScreen) helpLine() string {
	bindings := []key.Binding{s.keys.Up, s.keys.Down, s.keys.ToggleEdit}
	if deleteEnabled(s.mode) {
		bindings = append(bindings, s.keys.Delete)
	}
	bindings = append(bindings, s.keys.Checkout, s.keys.Cancel)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
