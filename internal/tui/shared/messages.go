package shared

import "github.com/mobileking0827/VossShop/internal/domain"

// OpenCartMsg asks the app to show the cart screen.
type OpenCartMsg struct{}

// CartDismissedMsg reports that the cart screen was dismissed. CheckedOut
// is true when the dismissal came from the checkout button rather than
// the cancel action.
type CartDismissedMsg struct {
	CheckedOut bool
}

// ProductsLoadedMsg carries the catalog contents after a successful load.
type ProductsLoadedMsg struct {
	Products []*domain.Product
}

// ErrMsg wraps an error for inline display on the active screen.
type ErrMsg struct {
	Err error
}
