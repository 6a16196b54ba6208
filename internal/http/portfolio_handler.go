package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecofolio/internal/domain"
	"ecofolio/internal/portfolio"
)

// PortfolioHandler expone los datos estaticos del sitio.
type PortfolioHandler struct {
	logger *zap.Logger
	store  *portfolio.Store
}

func NewPortfolioHandler(logger *zap.Logger, store *portfolio.Store) *PortfolioHandler {
	if ungrouped := portfolio.UngroupedSkills(store.Skills()); len(ungrouped) > 0 {
		logger.Warn("skills with unknown category will not be grouped", zap.Int("count", len(ungrouped)))
	}
	return &PortfolioHandler{logger: logger, store: store}
}

// GetPortfolio maneja GET /api/portfolio con todo lo necesario para la pagina.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	skills := h.store.Skills()
	c.JSON(http.StatusOK, gin.H{
		"profile":      h.store.Profile(),
		"experiences":  h.store.Experiences(),
		"projects":     h.store.Projects(),
		"skills":       skills,
		"skill_groups": portfolio.GroupSkills(skills),
	})
}

// GetProfile maneja GET /api/profile.
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": h.store.Profile()})
}

// ListExperiences maneja GET /api/experiences.
func (h *PortfolioHandler) ListExperiences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"experiences": h.store.Experiences()})
}

// ListProjects maneja GET /api/projects con filtro opcional ?category=.
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	raw := c.Query("category")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"projects": h.store.Projects()})
		return
	}

	category := domain.ProjectCategory(raw)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown project category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": h.store.ProjectsByCategory(category)})
}

// ListSkills maneja GET /api/skills; con ?grouped=true devuelve grupos por categoria.
func (h *PortfolioHandler) ListSkills(c *gin.Context) {
	grouped, err := strconv.ParseBool(c.DefaultQuery("grouped", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grouped must be a boolean"})
		return
	}
	if grouped {
		c.JSON(http.StatusOK, gin.H{"skill_groups": portfolio.GroupSkills(h.store.Skills())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": h.store.Skills()})
}
