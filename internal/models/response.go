package models

import "github.com/gofiber/fiber/v2"

// APIResponse is the success envelope wrapping every JSON payload.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIErrorResponse is the envelope for failed requests.
type APIErrorResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Respond writes the standard success envelope with the given status.
func Respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// RespondWithError writes the standard error envelope for err.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr := AsAppError(err)

	resp := APIErrorResponse{
		Status:  false,
		Message: appErr.Message,
	}
	if appErr.Err != nil && appErr.Code != CodeInternal {
		resp.Errors = []string{appErr.Err.Error()}
	}

	return c.Status(appErr.Status()).JSON(resp)
}
