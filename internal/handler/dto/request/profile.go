package request

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Country        *string `json:"country,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	MarketingOptIn *bool   `json:"marketing_opt_in,omitempty"`
}
