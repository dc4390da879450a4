package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpdateImageRequest sets or clears an entity's image. A null URL removes
// the image.
type UpdateImageRequest struct {
	ImageURL *string `json:"image_url"`
}

func (req *UpdateImageRequest) Validate() error {
	if req.ImageURL == nil {
		return nil
	}

	return validation.Validate(*req.ImageURL, is.URL, validation.Length(0, 500))
}
