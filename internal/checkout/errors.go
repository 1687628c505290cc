package checkout

import pkgerrors "github.com/angelmondragon/storefront/pkg/errors"

// ErrEmptyCart is returned when a checkout is attempted with no items.
var ErrEmptyCart = pkgerrors.New(pkgerrors.CodeEmptyCart, "Keranjang kosong!")
