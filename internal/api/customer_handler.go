package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/service"
)

type CustomerHandler struct {
	users     *service.UserService
	orders    *service.OrderService
	wishlist  *service.WishlistService
	invoices  *service.InvoiceService
	staticDir string
}

func NewCustomerHandler(users *service.UserService, orders *service.OrderService,
	wishlist *service.WishlistService, invoices *service.InvoiceService, staticDir string) *CustomerHandler {
	return &CustomerHandler{
		users:     users,
		orders:    orders,
		wishlist:  wishlist,
		invoices:  invoices,
		staticDir: staticDir,
	}
}

func (h *CustomerHandler) Register(c echo.Context) error {
	data := formOrJSON(c)

	if data["username"] == "" || data["email"] == "" || data["password"] == "" || data["full_name"] == "" {
		return codeError(c, http.StatusBadRequest, "Missing required fields")
	}

	user, err := h.users.Register(c.Request().Context(), service.RegisterInput{
		FullName: data["full_name"],
		Username: data["username"],
		Email:    data["email"],
		Password: data["password"],
	}, entity.RoleCustomer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return codeError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			return codeError(c, http.StatusBadRequest, "Username already taken")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to register customer")
	}

	return codeSuccess(c, http.StatusCreated, "Customer registered successfully", authUserPayload(user))
}

func (h *CustomerHandler) Login(c echo.Context) error {
	data := formOrJSON(c)

	if data["email"] == "" || data["password"] == "" {
		return codeError(c, http.StatusBadRequest, "Email and password are required")
	}

	user, token, err := h.users.Login(c.Request().Context(), data["email"], data["password"], entity.RoleCustomer)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return codeError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return codeError(c, http.StatusInternalServerError, "Login failed")
	}

	return codeSuccessToken(c, http.StatusOK, "Login successfully", authUserPayload(user), token)
}

func (h *CustomerHandler) GetProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	user, err := h.users.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return codeError(c, http.StatusNotFound, "User not found.")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to fetch profile")
	}

	return codeSuccess(c, http.StatusOK, "Profile fetched successfully.", userPayload(user))
}

// UpdateProfile supports JSON, form data and an optional profile_pic file.
// Username/email changes are pre-checked for uniqueness against other users.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	update := service.ProfileUpdate{
		FullName: data["full_name"],
		Username: data["username"],
		Email:    data["email"],
	}

	if file := profilePicFile(c); file != nil {
		path, err := saveProfilePic(file, h.staticDir, id)
		if err != nil {
			return codeError(c, http.StatusInternalServerError, "Failed to save profile picture")
		}
		update.ProfilePic = path
	}

	user, updated, err := h.users.UpdateProfile(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return codeError(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, service.ErrUsernameTaken):
			return codeError(c, http.StatusBadRequest, "Username already taken by another user.")
		case errors.Is(err, service.ErrEmailTaken):
			return codeError(c, http.StatusBadRequest, "Email already in use by another user.")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to update profile: "+err.Error())
	}

	message := "Profile updated successfully."
	if !updated {
		message = "No changes provided for update."
	}
	return codeSuccess(c, http.StatusOK, message, userPayload(user))
}

// PlaceOrder is the customer order flow: stock check, decrement, order
// insert and invoice generation, all-or-nothing on the database side.
func (h *CustomerHandler) PlaceOrder(c echo.Context) error {
	customerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	productID, ok := parseID(data["product_id"])
	if !ok {
		return fail(c, http.StatusBadRequest, "Product ID is required.")
	}

	order, invoicePath, err := h.orders.PlaceOrder(c.Request().Context(), customerID, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return fail(c, http.StatusNotFound, "Product not found or unavailable.")
		case errors.Is(err, service.ErrOutOfStock):
			return fail(c, http.StatusBadRequest, "Product out of stock.")
		}
		return fail(c, http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	return success(c, http.StatusCreated, echo.Map{
		"message": "Order placed successfully.",
		"data": echo.Map{
			"order_id":     order.ID,
			"customer_id":  order.CustomerID,
			"product_id":   order.ProductID,
			"status":       string(order.Status),
			"created_at":   order.CreatedAtString(),
			"invoice_path": invoicePath,
		},
	})
}

func (h *CustomerHandler) GetWishlist(c echo.Context) error {
	userID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	entries, err := h.wishlist.List(c.Request().Context(), userID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch wishlist")
	}
	if len(entries) == 0 {
		return fail(c, http.StatusNotFound, "No items found in your wishlist.")
	}

	return success(c, http.StatusOK, echo.Map{"message": "Wishlist fetched successfully", "data": entries})
}

func (h *CustomerHandler) AddToWishlist(c echo.Context) error {
	userID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	productID, ok := parseID(data["product_id"])
	if !ok {
		return fail(c, http.StatusBadRequest, "Product ID is required")
	}

	if err := h.wishlist.Add(c.Request().Context(), userID, productID); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return fail(c, http.StatusNotFound, "Product not found.")
		case errors.Is(err, service.ErrAlreadyInWishlist):
			return fail(c, http.StatusBadRequest, "Product already exists in your wishlist.")
		}
		return fail(c, http.StatusInternalServerError, "Failed to add product to wishlist")
	}

	return success(c, http.StatusCreated, echo.Map{"message": "Product added to wishlist."})
}

func (h *CustomerHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	productID, ok := parseID(data["product_id"])
	if !ok {
		return fail(c, http.StatusBadRequest, "Product ID is required")
	}

	if err := h.wishlist.Remove(c.Request().Context(), userID, productID); err != nil {
		if errors.Is(err, service.ErrNotInWishlist) {
			return fail(c, http.StatusNotFound, "Product not found in your wishlist.")
		}
		return fail(c, http.StatusInternalServerError, "Failed to remove product from wishlist")
	}

	return success(c, http.StatusOK, echo.Map{"message": "Product removed from wishlist."})
}

// DownloadInvoice verifies ownership, (re)generates the PDF and streams it
// back as an attachment.
func (h *CustomerHandler) DownloadInvoice(c echo.Context) error {
	customerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	orderID, ok := parseID(c.Param("order_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID")
	}

	ctx := c.Request().Context()
	if _, err := h.orders.GetOwnedOrder(ctx, orderID, customerID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fail(c, http.StatusNotFound, "Order not found or does not belong to you.")
		}
		return fail(c, http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	path, err := h.invoices.GenerateForOrder(ctx, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrProductNotFound):
			return fail(c, http.StatusNotFound, err.Error())
		}
		return fail(c, http.StatusInternalServerError, "An error occurred: "+err.Error())
	}
	if _, err := os.Stat(path); err != nil {
		return fail(c, http.StatusNotFound, "Invoice generation failed.")
	}

	return c.Attachment(path, fmt.Sprintf("invoice_order_%d.pdf", orderID))
}
