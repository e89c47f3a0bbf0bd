package adaptor

import (
	"net/http"

	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

type HeroHandler struct {
	service usecase.HeroService
	log     *zap.Logger
}

func NewHeroHandler(service usecase.HeroService, log *zap.Logger) *HeroHandler {
	return &HeroHandler{
		service: service,
		log:     log.With(zap.String("handler", "hero")),
	}
}

// GetHero handles GET /api/hero
func (h *HeroHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetHeroItems(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get hero items")
		return
	}

	utils.ResponseSuccess(w, "Hero items retrieved successfully", items)
}
