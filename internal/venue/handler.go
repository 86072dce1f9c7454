package venue

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	hours   Hours
	weather *WeatherClient
	log     *zap.Logger
	now     func() time.Time
}

func NewHandler(hours Hours, weather *WeatherClient, log *zap.Logger) *Handler {
	return &Handler{
		hours:   hours,
		weather: weather,
		log:     log,
		now:     time.Now,
	}
}

// GetStatus answers the board header: open/closed indicator plus the
// current weather when reachable.
func (h *Handler) GetStatus(c *gin.Context) {
	open := h.hours.OpenNow(h.now())

	body := gin.H{
		"open":  open,
		"label": StatusLabel(open),
	}

	if h.weather != nil {
		w, err := h.weather.Current(c.Request.Context())
		if err != nil {
			h.log.Debug("weather unavailable", zap.Error(err))
		} else {
			body["weather"] = w
		}
	}

	c.JSON(http.StatusOK, body)
}
