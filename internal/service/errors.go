package service

import "errors"

// Sentinel errors mapped by the handlers onto response envelopes:
// validation -> 400, credentials -> 401, not-found/ownership -> 404,
// duplicates -> 400, anything else -> 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProductNotFound = errors.New("product not found or unavailable")
	ErrOutOfStock      = errors.New("product out of stock")

	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status. Allowed values: Pending, Shipped, Delivered, Cancelled")

	ErrAlreadyInWishlist = errors.New("product already exists in your wishlist")
	ErrNotInWishlist     = errors.New("product not found in your wishlist")
)
