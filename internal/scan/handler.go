package scan

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AllanGabay/vitadex/internal/auth"
	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/internal/notify"
	"github.com/AllanGabay/vitadex/pkg/models"
)

type Handler struct {
	Pipeline *Pipeline
	Hub      *notify.Hub
}

func NewHandler(pipeline *Pipeline, hub *notify.Hub) *Handler {
	return &Handler{Pipeline: pipeline, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scan", h.analyze)
}

type scanResponse struct {
	ID              string                 `json:"id"`
	Cached          bool                   `json:"cached"`
	Metadata        models.SpeciesMetadata `json:"metadata"`
	BackgroundImage []byte                 `json:"backgroundImage"`
	SubjectImage    []byte                 `json:"subjectImage"`
	HTMLCardMarkup  string                 `json:"htmlCardMarkup,omitempty"`
}

func (h *Handler) analyze(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	in, lat, lng, verr := parseScanRequest(c)
	if verr != nil {
		c.JSON(verr.Status, gin.H{"error": verr.Message})
		return
	}

	rec, cached, err := h.Pipeline.Run(c.Request.Context(), in, lat, lng, claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	if !cached && h.Hub != nil {
		go h.Hub.BroadcastJSON(notify.NewCardEvent(rec))
	}

	c.JSON(http.StatusOK, scanResponse{
		ID:              rec.ID,
		Cached:          cached,
		Metadata:        rec.Metadata,
		BackgroundImage: rec.BackgroundPNG,
		SubjectImage:    rec.SubjectPNG,
		HTMLCardMarkup:  rec.HTMLCard,
	})
}

// writeError converts any pipeline failure into the {error} body and
// status the client contract expects. Wrapped causes stay in the log,
// not in the response.
func writeError(c *gin.Context, err error) {
	var ve *apperrors.VitaError
	if errors.As(err, &ve) {
		if ve.Err != nil {
			log.Printf("[scan] %s: %v", ve.Code, ve.Err)
		} else {
			log.Printf("[scan] %s", ve.Code)
		}
		c.JSON(ve.Status, gin.H{"error": ve.Message})
		return
	}
	log.Printf("[scan] unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
