package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobileking0827/VossShop/internal/cart"
	"github.com/mobileking0827/VossShop/internal/money"
	"github.com/mobileking0827/VossShop/internal/tui/screens"
	"github.com/mobileking0827/VossShop/internal/tui/shared"
	"go.uber.org/zap"
)

// App is the root program model. It owns the shared cart, keeps the shop
// screen alive across cart visits, and swaps the active screen on the
// shared transition messages.
type App struct {
	cart   *cart.Cart
	prices money.Formatter
	logger *zap.Logger

	current tea.Model
	shop    screens.ShopScreen

	lastSize   tea.WindowSizeMsg
	checkedOut bool
}

func NewApp(catalog screens.ProductLister, c *cart.Cart, prices money.Formatter, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}

	shop := screens.NewShopScreen(catalog, c, prices, logger)
	return App{
		cart:    c,
		prices:  prices,
		logger:  logger,
		current: shop,
		shop:    shop,
	}
}

// CheckoutRequested reports whether the session ended on the checkout
// button. The caller decides what to do with the intent after the
// program exits.
func (a App) CheckoutRequested() bool {
	return a.checkedOut
}

func (a App) Init() tea.Cmd {
	return a.current.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.lastSize = msg

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case shared.OpenCartMsg:
		// A fresh screen per visit, so editing mode starts reset.
		a.current = screens.NewCartScreen(a.cart, a.prices, a.logger)
		return a.withSize(a.current.Init())

	case shared.CartDismissedMsg:
		if msg.CheckedOut {
			a.checkedOut = true
			a.logger.Info("checkout handed off", zap.Int("items", a.cart.Count()))
			return a, tea.Quit
		}
		a.current = a.shop
		return a.withSize(nil)

	case shared.ProductsLoadedMsg, shared.ErrMsg:
		// The catalog load can finish while another screen is active;
		// the shop screen owns these messages either way.
		next, cmd := a.shop.Update(msg)
		if shop, ok := next.(screens.ShopScreen); ok {
			a.shop = shop
		}
		if _, ok := a.current.(screens.ShopScreen); ok {
			a.current = next
		}
		return a, cmd
	}

	next, cmd := a.current.Update(msg)
	a.current = next
	if shop, ok := next.(screens.ShopScreen); ok {
		a.shop = shop
	}
	return a, cmd
}

// withSize replays the last known terminal size to a newly activated
// screen so it does not render unsized until the next resize.
func (a App) withSize(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if a.lastSize.Width == 0 {
		return a, cmd
	}

	next, sizeCmd := a.current.Update(a.lastSize)
	a.current = next
	if shop, ok := next.(screens.ShopScreen); ok {
		a.shop = shop
	}
	return a, tea.Batch(cmd, sizeCmd)
}

func (a App) View() string {
	return a.current.View()
}
