package fiber

type ApplicationOptionsResponse struct {
	Applications []string `json:"applications"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"organizationName is required"`
}
