package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/service"
)

type AdminHandler struct {
	users     *service.UserService
	orders    *service.OrderService
	staticDir string
}

func NewAdminHandler(users *service.UserService, orders *service.OrderService, staticDir string) *AdminHandler {
	return &AdminHandler{users: users, orders: orders, staticDir: staticDir}
}

// authUserPayload is the user block returned by register/login responses.
func authUserPayload(u *entity.User) echo.Map {
	return echo.Map{
		"id":             u.ID,
		"email":          u.Email,
		"full_name":      u.FullName,
		"profile_pic":    u.ProfilePic,
		"user_type":      string(u.Role),
		"account_status": u.AccountStatus,
	}
}

// userPayload is the full user block used by profile and dashboard responses.
func userPayload(u *entity.User) echo.Map {
	return echo.Map{
		"id":             u.ID,
		"full_name":      u.FullName,
		"username":       u.Username,
		"email":          u.Email,
		"role":           string(u.Role),
		"account_status": u.AccountStatus,
		"profile_pic":    u.ProfilePic,
	}
}

func orderPayload(o *entity.Order) echo.Map {
	return echo.Map{
		"id":          o.ID,
		"customer_id": o.CustomerID,
		"product_id":  o.ProductID,
		"status":      string(o.Status),
		"created_at":  o.CreatedAtString(),
	}
}

// Register creates an admin account. Accepts JSON or multipart form with an
// optional profile_pic file.
func (h *AdminHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	data := formOrJSON(c)

	if data["username"] == "" || data["email"] == "" || data["password"] == "" || data["full_name"] == "" {
		return codeError(c, http.StatusBadRequest, "Missing required fields")
	}

	user, err := h.users.Register(ctx, service.RegisterInput{
		FullName: data["full_name"],
		Username: data["username"],
		Email:    data["email"],
		Password: data["password"],
	}, entity.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return codeError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			return codeError(c, http.StatusBadRequest, "Username already taken")
		}
		return codeError(c, http.StatusInternalServerError, "Failed to register admin")
	}

	if file := profilePicFile(c); file != nil {
		path, err := saveProfilePic(file, h.staticDir, user.ID)
		if err == nil {
			if updated, _, uerr := h.users.UpdateProfile(ctx, user.ID, service.ProfileUpdate{ProfilePic: path}); uerr == nil {
				user = updated
			}
		}
	}

	return codeSuccess(c, http.StatusCreated, "Admin registered successfully", authUserPayload(user))
}

func (h *AdminHandler) Login(c echo.Context) error {
	data := formOrJSON(c)

	if data["email"] == "" || data["password"] == "" {
		return codeError(c, http.StatusBadRequest, "Email and password are required")
	}

	user, token, err := h.users.Login(c.Request().Context(), data["email"], data["password"], entity.RoleAdmin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return codeError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return codeError(c, http.StatusInternalServerError, "Login failed")
	}

	return codeSuccessToken(c, http.StatusOK, "Login successfully", authUserPayload(user), token)
}

func (h *AdminHandler) GetProfile(c echo.Context) error {
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

// UpdateProfile applies only the provided fields.
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
	}

	data := formOrJSON(c)
	user, _, err := h.users.UpdateProfile(c.Request().Context(), id, service.ProfileUpdate{
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

	return codeSuccess(c, http.StatusOK, "Profile updated successfully", userPayload(user))
}

// ListUsers returns every user row, any role.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch users")
	}

	payload := make([]echo.Map, 0, len(users))
	for _, user := range users {
		payload = append(payload, userPayload(user))
	}
	return c.JSON(http.StatusOK, payload)
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	data := formOrJSON(c)

	for _, field := range []string{"full_name", "username", "email", "role", "password"} {
		if data[field] == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing fields: " + field})
		}
	}

	role := entity.Role(data["role"])
	if !role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid role"})
	}

	user, err := h.users.CreateUser(c.Request().Context(), service.AdminCreateUserInput{
		FullName:      data["full_name"],
		Username:      data["username"],
		Email:         data["email"],
		Password:      data["password"],
		Role:          role,
		AccountStatus: data["account_status"],
		ProfilePic:    data["profile_pic"],
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username or email already exists."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully", "user": userPayload(user)})
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	id, ok := parseID(c.Param("user_id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user ID"})
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, userPayload(user))
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, ok := parseID(c.Param("user_id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user ID"})
	}

	data := formOrJSON(c)
	user, err := h.users.UpdateUser(c.Request().Context(), id, service.AdminUpdateUserInput{
		FullName:      data["full_name"],
		Username:      data["username"],
		Email:         data["email"],
		Password:      data["password"],
		Role:          entity.Role(data["role"]),
		AccountStatus: data["account_status"],
		ProfilePic:    data["profile_pic"],
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update user"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully", "user": userPayload(user)})
}

// DeleteUser hard-deletes the row; dependent orders and products are left
// untouched.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, ok := parseID(c.Param("user_id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user ID"})
	}

	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch orders")
	}

	payload := make([]echo.Map, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, orderPayload(order))
	}
	return success(c, http.StatusOK, echo.Map{"message": "Orders fetched successfully", "data": payload})
}

// CreateOrder places an order on behalf of a customer: validates
// availability, decrements stock, defaults the status to Pending.
func (h *AdminHandler) CreateOrder(c echo.Context) error {
	data := formOrJSON(c)

	customerID, okCustomer := parseID(data["customer_id"])
	productID, okProduct := parseID(data["product_id"])
	if !okCustomer || !okProduct {
		return fail(c, http.StatusBadRequest, "Customer ID and Product ID are required.")
	}

	status := entity.OrderStatus(data["status"])
	if status == "" {
		status = entity.StatusPending
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), customerID, productID, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return fail(c, http.StatusNotFound, "Product not found or unavailable.")
		case errors.Is(err, service.ErrOutOfStock):
			return fail(c, http.StatusBadRequest, "Product out of stock.")
		}
		return fail(c, http.StatusInternalServerError, "Failed to create order: "+err.Error())
	}

	return success(c, http.StatusCreated, echo.Map{"message": "Order created successfully", "data": orderPayload(order)})
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	id, ok := parseID(c.Param("order_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID")
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fail(c, http.StatusNotFound, "Order not found")
		}
		return fail(c, http.StatusInternalServerError, "Failed to fetch order")
	}
	return success(c, http.StatusOK, echo.Map{"message": "Order fetched successfully", "data": orderPayload(order)})
}

// UpdateOrder replaces the status only; any non-empty value is accepted here,
// unlike the provider endpoint.
func (h *AdminHandler) UpdateOrder(c echo.Context) error {
	id, ok := parseID(c.Param("order_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID")
	}

	data := formOrJSON(c)
	if data["status"] == "" {
		return fail(c, http.StatusBadRequest, "Status field is required.")
	}

	order, err := h.orders.AdminUpdateStatus(c.Request().Context(), id, data["status"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fail(c, http.StatusNotFound, "Order not found")
		}
		return fail(c, http.StatusInternalServerError, "Failed to update order: "+err.Error())
	}

	return success(c, http.StatusOK, echo.Map{
		"message": "Order updated successfully",
		"data": echo.Map{
			"id":         order.ID,
			"status":     string(order.Status),
			"created_at": order.CreatedAtString(),
		},
	})
}

// DeleteOrder removes the order and restores the product's stock by one.
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	id, ok := parseID(c.Param("order_id"))
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID")
	}

	if err := h.orders.DeleteOrder(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fail(c, http.StatusNotFound, "Order not found")
		}
		return fail(c, http.StatusInternalServerError, "Failed to delete order: "+err.Error())
	}
	return success(c, http.StatusOK, echo.Map{"message": "Order deleted successfully, product quantity restored."})
}
