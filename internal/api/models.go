package api

import (
	"github.com/goccy/go-json"

	"github.com/dph/portal/internal/database/repository"
)

type contactRequest struct {
	EnAddress    string `json:"en_address"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Fax          string `json:"fax"`
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}

type feedbackResponse struct {
	Message  string              `json:"message"`
	Feedback repository.Feedback `json:"feedback"`
}

type bannerURI struct {
	ID string `uri:"id" binding:"required"`
}

type createBannerRequest struct {
	Banner string `json:"banner"`
}

// updateBannerRequest mirrors the admin form: an empty banner clears the
// image, and is_active may arrive as a bool or as a string.
type updateBannerRequest struct {
	Banner   *string   `json:"banner"`
	IsActive *flexBool `json:"is_active"`
}

type bannerResponse struct {
	Message string                    `json:"message"`
	Banner  repository.HomepageBanner `json:"banner"`
}

type bannersResponse struct {
	Message string                      `json:"message"`
	Banners []repository.HomepageBanner `json:"banners"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// flexBool is true only for JSON true or the string "true"; any other
// value, such as "1" or "yes", reads as false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = flexBool(v == true || v == "true")
	return nil
}
