package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mobileking0827/VossShop/internal/cart"
	"github.com/mobileking0827/VossShop/internal/domain"
	"github.com/mobileking0827/VossShop/internal/money"
	"github.com/mobileking0827/VossShop/internal/tui/shared"
	"go.uber.org/zap"
)

const catalogLoadTimeout = 5 * time.Second

// ProductLister is the slice of the catalog the shop screen consumes.
type ProductLister interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
}

// ShopScreen lists the catalog and fills the shared cart. Selecting a
// product appends it as a new cart entry; "c" opens the cart screen.
type ShopScreen struct {
	catalog ProductLister
	cart    *cart.Cart
	prices  money.Formatter
	logger  *zap.Logger

	keys    shopKeyMap
	styles  styles
	spinner spinner.Model

	loading  bool
	products []*domain.Product
	cursor   int
	flash    string
	err      error
	width    int
	height   int
}

func NewShopScreen(catalog ProductLister, c *cart.Cart, prices money.Formatter, logger *zap.Logger) ShopScreen {
	if c == nil {
		panic("screens: ShopScreen requires a cart")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return ShopScreen{
		catalog: catalog,
		cart:    c,
		prices:  prices,
		logger:  logger,
		keys:    newShopKeyMap(),
		styles:  newStyles(),
		spinner: sp,
		loading: true,
	}
}

func (s ShopScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, loadProducts(s.catalog))
}

func loadProducts(catalog ProductLister) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		defer cancel()

		products, err := catalog.GetAllProducts(ctx)
		if err != nil {
			return shared.ErrMsg{Err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return shared.ProductsLoadedMsg{Products: products}
	}
}

func (s ShopScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case shared.ProductsLoadedMsg:
		s.loading = false
		s.products = msg.Products
		s.logger.Info("catalog loaded", zap.Int("products", len(msg.Products)))
		return s, nil

	case shared.ErrMsg:
		s.loading = false
		s.err = msg.Err
		s.logger.Error("catalog load failed", zap.Error(msg.Err))
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s ShopScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.products)-1 {
			s.cursor++
		}
		return s, nil

	case key.Matches(msg, s.keys.Add):
		return s.addUnderCursor()

	case key.Matches(msg, s.keys.OpenCart):
		return s, openCart()
	}

	return s, nil
}

func (s ShopScreen) addUnderCursor() (tea.Model, tea.Cmd) {
	if len(s.products) == 0 {
		return s, nil
	}

	p := *s.products[s.cursor]
	s.cart.Add(p)
	s.flash = fmt.Sprintf("Added %s (cart: %d)", p.Name, s.cart.Count())

	s.logger.Info("added product to cart",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("cart_size", s.cart.Count()),
	)
	return s, nil
}

func openCart() tea.Cmd {
	return func() tea.Msg {
		return shared.OpenCartMsg{}
	}
}

func (s ShopScreen) View() string {
	header := s.viewHeader()
	body := s.viewBody()
	footer := s.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (s ShopScreen) viewHeader() string {
	title := s.styles.title.Render("VossShop")
	subtitle := s.styles.action.Render(fmt.Sprintf("cart: %d", s.cart.Count()))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", subtitle)
}

func (s ShopScreen) viewBody() string {
	if s.loading {
		return fmt.Sprintf("%s Loading catalog...", s.spinner.View())
	}
	if s.err != nil {
		return s.styles.errLine.Render(fmt.Sprintf("Could not load the catalog: %v", s.err))
	}
	if len(s.products) == 0 {
		return s.styles.empty.Render("The catalog is empty.")
	}

	var b strings.Builder
	for i, p := range s.products {
		price, ok := s.prices.Format(p.Price)
		if !ok {
			price = ""
		}

		cursor := " "
		if s.cursor == i {
			cursor = ">"
		}

		line := fmt.Sprintf("%s %-24s %10s  %s", cursor, p.Name, price, s.styles.desc.Render(p.Description))
		if s.cursor == i {
			line = s.styles.selectedRow.Render(line)
		} else {
			line = s.styles.row.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(s.styles.flash.Render(s.flash))
	}
	return b.String()
}

func (s ShopScreen) viewFooter() string {
	bindings := []key.Binding{s.keys.Up, s.keys.Down, s.keys.Add, s.keys.OpenCart, s.keys.Quit}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return s.styles.help.Render(strings.Join(parts, " · "))
}
