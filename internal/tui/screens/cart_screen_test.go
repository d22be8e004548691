package screens_test

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobileking0827/VossShop/internal/cart"
	"github.com/mobileking0827/VossShop/internal/domain"
	"github.com/mobileking0827/VossShop/internal/money"
	"github.com/mobileking0827/VossShop/internal/tui/screens"
	"github.com/mobileking0827/VossShop/internal/tui/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func usd() money.Formatter {
	return money.NewSymbolFormatter("USD")
}

// canonicalCart is the two-item cart used throughout: Widget at $9.99 and
// Gadget at $4.50, totalling $14.49.
func canonicalCart() *cart.Cart {
	c := cart.New()
	c.Add(domain.Product{ID: 1, Name: "Widget", Price: 999})
	c.Add(domain.Product{ID: 2, Name: "Gadget", Price: 450})
	return c
}

func newCartScreen(c *cart.Cart) screens.CartScreen {
	return screens.NewCartScreen(c, usd(), zap.NewNop())
}

func sizedCart(t *testing.T, m tea.Model) screens.CartScreen {
	t.Helper()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	screen, ok := updated.(screens.CartScreen)
	require.True(t, ok)
	return screen
}

func pressCart(t *testing.T, m tea.Model, msg tea.KeyMsg) (screens.CartScreen, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	screen, ok := updated.(screens.CartScreen)
	require.True(t, ok)
	return screen, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCartScreen_NilCart_Panics(t *testing.T) {
	assert.Panics(t, func() {
		screens.NewCartScreen(nil, usd(), zap.NewNop())
	})
}

func TestCartScreen_RendersARowPerEntry(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	view := stripANSI(sut.View())

	assert.Contains(t, view, "Widget")
	assert.Contains(t, view, "$9.99")
	assert.Contains(t, view, "Gadget")
	assert.Contains(t, view, "$4.50")
}

func TestCartScreen_TitleShowsCount_ButtonShowsTotal(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	view := stripANSI(sut.View())

	assert.Contains(t, view, "Your Cart (2)")
	// 999 + 450 cents
	assert.Contains(t, view, "Check out ($14.49)")
}

func TestCartScreen_EmptyCart_RendersZeroTotals(t *testing.T) {
	sut := sizedCart(t, newCartScreen(cart.New()))

	view := stripANSI(sut.View())

	assert.Contains(t, view, "Your Cart (0)")
	assert.Contains(t, view, "Check out ($0.00)")
	assert.Contains(t, view, "Your cart is empty.")
}

func TestCartScreen_UnknownCurrency_RendersEmptyPrices(t *testing.T) {
	basket := canonicalCart()
	sut := screens.NewCartScreen(basket, money.NewSymbolFormatter("XXX"), zap.NewNop())

	view := stripANSI(sizedCart(t, sut).View())

	assert.Contains(t, view, "Check out ()")
	assert.NotContains(t, view, "$")
}

func TestCartScreen_EditToggle_FlipsLabelAndBack(t *testing.T) {
	sut := sizedCart(t, newCartScreen(canonicalCart()))

	view := stripANSI(sut.View())
	assert.Contains(t, view, "[e] Edit")
	assert.NotContains(t, view, "[e] Done")

	sut, _ = pressCart(t, sut, keyRune('e'))
	view = stripANSI(sut.View())
	assert.Contains(t, view, "[e] Done")

	// A second toggle is a full round trip back to browsing
	sut, _ = pressCart(t, sut, keyRune('e'))
	view = stripANSI(sut.View())
	assert.Contains(t, view, "[e] Edit")
	assert.NotContains(t, view, "[e] Done")
}

func TestCartScreen_EditingExposesDeleteControls(t *testing.T) {
	sut := sizedCart(t, newCartScreen(canonicalCart()))

	assert.NotContains(t, stripANSI(sut.View()), "[-]")

	sut, _ = pressCart(t, sut, keyRune('e'))

	assert.Contains(t, stripANSI(sut.View()), "[-]")
}

func TestCartScreen_DeleteRemovesRowAndRefreshesTotals(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	sut, _ = pressCart(t, sut, keyRune('e'))
	sut, _ = pressCart(t, sut, keyRune('x'))

	assert.Equal(t, 1, basket.Count())

	view := stripANSI(sut.View())
	assert.NotContains(t, view, "Widget")
	assert.Contains(t, view, "Gadget")
	assert.Contains(t, view, "Your Cart (1)")
	assert.Contains(t, view, "Check out ($4.50)")
}

func TestCartScreen_DeleteMiddleRow_PreservesOrder(t *testing.T) {
	basket := cart.New()
	basket.Add(domain.Product{ID: 1, Name: "Alpha", Price: 100})
	basket.Add(domain.Product{ID: 2, Name: "Beta", Price: 200})
	basket.Add(domain.Product{ID: 3, Name: "Gamma", Price: 300})

	sut := sizedCart(t, newCartScreen(basket))
	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyDown})
	sut, _ = pressCart(t, sut, keyRune('e'))
	sut, _ = pressCart(t, sut, keyRune('x'))

	require.Equal(t, 2, basket.Count())

	view := stripANSI(sut.View())
	assert.NotContains(t, view, "Beta")
	assert.Less(t, strings.Index(view, "Alpha"), strings.Index(view, "Gamma"))
}

func TestCartScreen_DeleteLastRow_ClampsCursor(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyDown})
	sut, _ = pressCart(t, sut, keyRune('e'))
	sut, _ = pressCart(t, sut, keyRune('x'))
	require.Equal(t, 1, basket.Count())

	// The cursor now sits on the remaining row; deleting again empties
	// the cart without panicking.
	sut, _ = pressCart(t, sut, keyRune('x'))
	assert.Equal(t, 0, basket.Count())

	sut, _ = pressCart(t, sut, keyRune('x'))
	assert.Equal(t, 0, basket.Count())
	assert.Contains(t, stripANSI(sut.View()), "Your Cart (0)")
}

func TestCartScreen_DeleteIgnoredWhileBrowsing(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	sut, _ = pressCart(t, sut, keyRune('x'))

	assert.Equal(t, 2, basket.Count())
	assert.Contains(t, stripANSI(sut.View()), "Your Cart (2)")
}

func TestCartScreen_Cancel_DismissesWithoutMutation(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	_, cmd := pressCart(t, sut, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	dismissed, ok := msg.(shared.CartDismissedMsg)
	require.True(t, ok)
	assert.False(t, dismissed.CheckedOut)
	assert.Equal(t, 2, basket.Count())
}

func TestCartScreen_Checkout_DismissesWithIntent(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	_, cmd := pressCart(t, sut, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	dismissed, ok := msg.(shared.CartDismissedMsg)
	require.True(t, ok)
	assert.True(t, dismissed.CheckedOut)
	// Checkout itself is external; the cart must be left as-is.
	assert.Equal(t, 2, basket.Count())
}

func TestCartScreen_CtrlC_Quits(t *testing.T) {
	sut := sizedCart(t, newCartScreen(canonicalCart()))

	_, cmd := pressCart(t, sut, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCartScreen_CursorStaysInBounds(t *testing.T) {
	basket := canonicalCart()
	sut := sizedCart(t, newCartScreen(basket))

	// Walk past both ends; the screen must neither panic nor lose rows.
	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyUp})
	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyDown})
	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyDown})
	sut, _ = pressCart(t, sut, tea.KeyMsg{Type: tea.KeyDown})

	view := stripANSI(sut.View())
	assert.Contains(t, view, "Widget")
	assert.Contains(t, view, "Gadget")
}
