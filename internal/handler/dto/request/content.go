package request

type CreateLocationRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	Region   string  `json:"region"`
	Lat      float64 `json:"lat" binding:"required"`
	Lng      float64 `json:"lng" binding:"required"`
	ImageURL *string `json:"image_url,omitempty"`
}

type CreateTipRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type FeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
