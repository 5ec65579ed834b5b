package scan

import (
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/pkg/models"
)

// maxImageBytes bounds uploaded photos (multipart path).
const maxImageBytes = 8 << 20

type scanRequest struct {
	ImageBase64     *string  `json:"imageBase64"`
	TextDescription *string  `json:"textDescription"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// parseScanRequest reads the capture payload from either a JSON or
// multipart body and narrows it to the tagged input variant. All
// parameter errors are reported here, before any model call is made.
func parseScanRequest(c *gin.Context) (models.ScanInput, float64, float64, *apperrors.VitaError) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return parseMultipart(c)
	}
	return parseJSON(c)
}

func parseJSON(c *gin.Context) (models.ScanInput, float64, float64, *apperrors.VitaError) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, 0, 0, apperrors.NewMissingParameters("invalid json body")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, 0, 0, apperrors.NewMissingParameters("latitude and longitude are required")
	}

	hasImage := req.ImageBase64 != nil && *req.ImageBase64 != ""
	hasText := req.TextDescription != nil && strings.TrimSpace(*req.TextDescription) != ""
	switch {
	case hasImage && hasText:
		return nil, 0, 0, apperrors.NewMissingParameters("provide either imageBase64 or textDescription, not both")
	case hasImage:
		data, err := base64.StdEncoding.DecodeString(*req.ImageBase64)
		if err != nil {
			return nil, 0, 0, apperrors.NewMissingParameters("imageBase64 is not valid base64")
		}
		return models.ImageInput{Data: data, MIME: "image/jpeg"}, *req.Latitude, *req.Longitude, nil
	case hasText:
		return models.TextInput{Description: strings.TrimSpace(*req.TextDescription)}, *req.Latitude, *req.Longitude, nil
	default:
		return nil, 0, 0, apperrors.NewMissingParameters("imageBase64 or textDescription is required")
	}
}

func parseMultipart(c *gin.Context) (models.ScanInput, float64, float64, *apperrors.VitaError) {
	lat, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		return nil, 0, 0, apperrors.NewMissingParameters("latitude and longitude are required")
	}
	lng, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		return nil, 0, 0, apperrors.NewMissingParameters("latitude and longitude are required")
	}

	text := strings.TrimSpace(c.PostForm("textDescription"))
	file, header, err := c.Request.FormFile("image")
	hasImage := err == nil

	switch {
	case hasImage && text != "":
		file.Close()
		return nil, 0, 0, apperrors.NewMissingParameters("provide either an image or a textDescription, not both")
	case hasImage:
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil || len(data) == 0 {
			return nil, 0, 0, apperrors.NewMissingParameters("could not read image upload")
		}
		mime := header.Header.Get("Content-Type")
		if !strings.HasPrefix(mime, "image/") {
			mime = "image/jpeg"
		}
		return models.ImageInput{Data: data, MIME: mime}, lat, lng, nil
	case text != "":
		return models.TextInput{Description: text}, lat, lng, nil
	default:
		return nil, 0, 0, apperrors.NewMissingParameters("image or textDescription is required")
	}
}
