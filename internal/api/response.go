package api

import "github.com/labstack/echo/v4"

// Two envelope shapes coexist on purpose: auth/profile endpoints use the
// numeric code envelope, the dashboard/resource endpoints use the
// "status": "success"/"error" shape. Both mirror the HTTP status.

func codeError(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"code": code, "message": message, "status": 0})
}

func codeSuccess(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, echo.Map{"code": code, "data": data, "message": message, "status": 1})
}

func codeSuccessToken(c echo.Context, code int, message string, data interface{}, token string) error {
	return c.JSON(code, echo.Map{"code": code, "data": data, "message": message, "status": 1, "token": token})
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"status": "error", "message": message})
}

func success(c echo.Context, code int, body echo.Map) error {
	out := echo.Map{"status": "success"}
	for k, v := range body {
		out[k] = v
	}
	return c.JSON(code, out)
}
