package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/service"
)

type ProviderHandler struct {
	users         *service.UserService
	orders        *service.OrderService
	products      *service.ProductService
	notifications *service.NotificationService
}

func NewProviderHandler(users *service.UserService, orders *service.OrderService,
	products *service.ProductService, notifications *service.NotificationService) *ProviderHandler {
	return &ProviderHandler{
		users:         users,
		orders:        orders,
		products:      products,
		notifications: notifications,
	}
}

func productPayload(p *entity.Product) echo.Map {
	return echo.Map{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
	}
}

// Register creates a provider account and, unlike the admin and customer
// flows, returns a token inline with the registration response.
func (h *ProviderHandler) Register(c echo.Context) error {
	data := formOrJSON(c)

	if data["username"] == "" || data["email"] == "" || data["password"] == "" || data["full_name"] == "" {
		return codeError(c, http.StatusBadRequest, "Missing required fields")
	}

	user, err := h.users.Register(c.Request().Context(), service.RegisterInput{
		FullName:   data["full_name"],
		Username:   data["username"],
		Email:      data["email"],
		Password:   data["password"],
		ProfilePic: data["profile_pic"],
	}, entity.RoleProvider)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return codeError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			return codeError(c, http.StatusBadRequest, "Username already taken")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to register service provider")
	}

	token, err := h.users.IssueToken(user)
	if err != nil {
		return codeError(c, http.StatusInternalServerError, "Failed to issue token")
	}

	return codeSuccessToken(c, http.StatusCreated, "Service provider registered successfully", authUserPayload(user), token)
}

func (h *ProviderHandler) Login(c echo.Context) error {
	data := formOrJSON(c)

	if data["email"] == "" || data["password"] == "" {
		return codeError(c, http.StatusBadRequest, "Email and password are required")
	}

	user, token, err := h.users.Login(c.Request().Context(), data["email"], data["password"], entity.RoleProvider)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return codeError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return codeError(c, http.StatusInternalServerError, "Login failed")
	}

	return codeSuccessToken(c, http.StatusOK, "Login successfully", authUserPayload(user), token)
}

func (h *ProviderHandler) GetProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	user, err := h.users.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return codeError(c, http.StatusNotFound, "User not found")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to fetch profile")
	}

	return codeSuccess(c, http.StatusOK, "Profile fetched successfully", userPayload(user))
}

// UpdateProfile accepts a profile_pic path string only; providers have no
// file-upload support here.
func (h *ProviderHandler) UpdateProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	user, updated, err := h.users.UpdateProfile(c.Request().Context(), id, service.ProfileUpdate{
		FullName:      data["full_name"],
		Username:      data["username"],
		Email:         data["email"],
		ProfilePic:    data["profile_pic"],
		AccountStatus: data["account_status"],
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return codeError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrUsernameTaken):
			return codeError(c, http.StatusBadRequest, "Username already taken by another user.")
		case errors.Is(err, service.ErrEmailTaken):
			return codeError(c, http.StatusBadRequest, "Email already in use by another user.")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to update profile: "+err.Error())
	}

	message := "Profile updated successfully"
	if !updated {
		message = "No changes provided for update."
	}
	return codeSuccess(c, http.StatusOK, message, userPayload(user))
}

// ListOrders joins orders against the provider's own products.
func (h *ProviderHandler) ListOrders(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	orders, err := h.orders.ListByProvider(c.Request().Context(), providerID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch orders")
	}
	if len(orders) == 0 {
		return fail(c, http.StatusNotFound, "No orders found for your products.")
	}

	payload := make([]echo.Map, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, orderPayload(order))
	}
	return success(c, http.StatusOK, echo.Map{"orders": payload})
}

// UpdateOrderStatus accepts only the fixed status enum and only for orders of
// the provider's own products.
func (h *ProviderHandler) UpdateOrderStatus(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	orderID, ok := parseID(c.Param("order_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID provided.")
	}

	data := formOrJSON(c)
	if data["status"] == "" {
		return fail(c, http.StatusBadRequest, "Status field is required.")
	}

	order, err := h.orders.ProviderUpdateStatus(c.Request().Context(), providerID, orderID, entity.OrderStatus(data["status"]))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return fail(c, http.StatusBadRequest, "Invalid status. Allowed values: Pending, Shipped, Delivered, Cancelled.")
		case errors.Is(err, service.ErrOrderNotFound):
			return fail(c, http.StatusNotFound, "Order not found or unauthorized")
		}
		return fail(c, http.StatusInternalServerError, "Failed to update order status")
	}

	return success(c, http.StatusOK, echo.Map{"message": "Order status updated successfully", "order": orderPayload(order)})
}

func (h *ProviderHandler) ListNotifications(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	notifications, err := h.notifications.ListByProvider(c.Request().Context(), providerID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch notifications")
	}
	if len(notifications) == 0 {
		return fail(c, http.StatusNotFound, "No notifications found.")
	}

	payload := make([]echo.Map, 0, len(notifications))
	for _, n := range notifications {
		payload = append(payload, echo.Map{
			"id":         n.ID,
			"message":    n.Message,
			"created_at": n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return success(c, http.StatusOK, echo.Map{"notifications": payload})
}

func (h *ProviderHandler) CreateNotification(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	if data["message"] == "" {
		return fail(c, http.StatusBadRequest, "Message is required.")
	}

	n, err := h.notifications.Create(c.Request().Context(), providerID, data["message"])
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to create notification")
	}

	return success(c, http.StatusCreated, echo.Map{
		"message": "Notification created successfully",
		"notification": echo.Map{
			"id":         n.ID,
			"message":    n.Message,
			"created_at": n.CreatedAt.Format("2006-01-02 15:04:05"),
		},
	})
}

// AddProduct validates name presence and that price and quantity parse as
// non-negative numbers after whitespace trimming.
func (h *ProviderHandler) AddProduct(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	if data["name"] == "" || data["price"] == "" || data["quantity"] == "" {
		return fail(c, http.StatusBadRequest, "Product name, price, and quantity are required")
	}

	quantity, ok := parseQuantity(data["quantity"])
	if !ok {
		return fail(c, http.StatusBadRequest, "Quantity must be a non-negative integer")
	}
	price, ok := parsePrice(data["price"])
	if !ok {
		return fail(c, http.StatusBadRequest, "Price must be a non-negative number")
	}

	product, err := h.products.AddProduct(c.Request().Context(), providerID, service.ProductInput{
		Name:        data["name"],
		Description: data["description"],
		Price:       price,
		Quantity:    quantity,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to add product")
	}

	return success(c, http.StatusCreated, echo.Map{"message": "Product added successfully", "product": productPayload(product)})
}

// ListProducts shows only the caller's non-soft-deleted products.
func (h *ProviderHandler) ListProducts(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	products, err := h.products.ListByProvider(c.Request().Context(), providerID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	if len(products) == 0 {
		return fail(c, http.StatusNotFound, "No products found.")
	}

	payload := make([]echo.Map, 0, len(products))
	for _, product := range products {
		payload = append(payload, productPayload(product))
	}
	return success(c, http.StatusOK, echo.Map{"products": payload})
}

func (h *ProviderHandler) UpdateProduct(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	productID, ok := parseID(c.Param("product_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}

	data := formOrJSON(c)
	update := service.ProductUpdate{
		Name:        data["name"],
		Description: data["description"],
	}

	if raw, present := data["price"]; present && raw != "" {
		price, ok := parsePrice(raw)
		if !ok {
			return fail(c, http.StatusBadRequest, "Price must be a non-negative number")
		}
		update.Price = &price
	}
	if raw, present := data["quantity"]; present && raw != "" {
		quantity, ok := parseQuantity(raw)
		if !ok {
			return fail(c, http.StatusBadRequest, "Quantity must be a non-negative integer")
		}
		update.Quantity = &quantity
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), providerID, productID, update)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, "Product not found or unauthorized")
		}
		return fail(c, http.StatusInternalServerError, "Failed to update product")
	}

	return success(c, http.StatusOK, echo.Map{"message": "Product updated successfully", "product": productPayload(product)})
}

// DeleteProduct soft-deletes: the row stays for order history but vanishes
// from listings and ordering.
func (h *ProviderHandler) DeleteProduct(c echo.Context) error {
	providerID, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	productID, ok := parseID(c.Param("product_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}

	if err := h.products.SoftDeleteProduct(c.Request().Context(), providerID, productID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, "Product not found or unauthorized")
		}
		return fail(c, http.StatusInternalServerError, "Failed to delete product")
	}

	return success(c, http.StatusOK, echo.Map{"message": "Product soft-deleted successfully"})
}
