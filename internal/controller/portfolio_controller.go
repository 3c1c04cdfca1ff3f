package controller

import (
	"errors"
	"net/http"

	"codefolio/internal/service"

	"github.com/gin-gonic/gin"
)

// PortfolioController handles the public, unauthenticated pages.
type PortfolioController struct {
	portfolio service.PortfolioService
}

// NewPortfolioController creates a new PortfolioController.
func NewPortfolioController(portfolio service.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolio: portfolio}
}

// Home renders the landing page.
func (pc *PortfolioController) Home(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{"Title": "Codefolio"})
}

// Portfolio renders one user's public project list.
func (pc *PortfolioController) Portfolio(c *gin.Context) {
	username := c.Param("username")

	owner, projects, err := pc.portfolio.Profile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			NotFoundPage(c)
			return
		}
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "portfolio.html", gin.H{
		"Title":    owner.Username,
		"Owner":    owner,
		"Projects": projects,
	})
}

// Search renders usernames matching ?q= as a case-insensitive substring.
func (pc *PortfolioController) Search(c *gin.Context) {
	query := c.Query("q")

	users, err := pc.portfolio.Search(c.Request.Context(), query)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "search_results.html", gin.H{
		"Title": "Search",
		"Query": query,
		"Users": users,
	})
}
