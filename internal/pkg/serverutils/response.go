package serverutils

// Response is the JSON envelope every endpoint answers with.
type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithData is used when the client needs structured detail
// about the failure (e.g. per-field validation messages).
func ErrorResponseWithData(code int, message string, data any) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
		Data:    data,
	}
}

type PaginatedData[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
