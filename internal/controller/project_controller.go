package controller

import (
	"errors"
	"net/http"
	"strconv"

	"codefolio/internal/models"
	"codefolio/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectController handles the authenticated dashboard and project
// mutations. Every handler here runs behind the auth middleware.
type ProjectController struct {
	projects service.ProjectService
}

// NewProjectController creates a new ProjectController.
func NewProjectController(projects service.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// Dashboard lists the owner's projects, newest first, above the
// create-project form.
func (pc *ProjectController) Dashboard(c *gin.Context) {
	projects, err := pc.projects.ListForOwner(c.Request.Context(), SessionUserID(c))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Projects": projects,
	})
}

// Create handles the create-project submission. A blank in any field rejects
// the whole submission without a write.
func (pc *ProjectController) Create(c *gin.Context) {
	var form models.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		SetFlash(c, "warning", "All fields are required.")
		redirect(c, "/dashboard")
		return
	}

	if _, err := pc.projects.Create(c.Request.Context(), SessionUserID(c), &form); err != nil {
		if errors.Is(err, service.ErrValidation) {
			SetFlash(c, "warning", "All fields are required.")
			redirect(c, "/dashboard")
			return
		}
		serverError(c, err)
		return
	}

	SetFlash(c, "success", "Project added successfully!")
	redirect(c, "/dashboard")
}

// ShowEdit renders the edit form pre-filled with the project's current
// values, owner-only.
func (pc *ProjectController) ShowEdit(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := pc.projects.GetForOwner(c.Request.Context(), id, SessionUserID(c))
	if err != nil {
		pc.mutationError(c, err)
		return
	}
	render(c, http.StatusOK, "edit_project.html", gin.H{
		"Title":   "Edit Project",
		"Project": project,
	})
}

// Update overwrites all four fields as submitted, blanks included.
func (pc *ProjectController) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var form models.EditProjectForm
	if err := c.ShouldBind(&form); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := pc.projects.Update(c.Request.Context(), id, SessionUserID(c), &form); err != nil {
		pc.mutationError(c, err)
		return
	}

	SetFlash(c, "success", "Project updated successfully!")
	redirect(c, "/dashboard")
}

// Delete permanently removes a project, owner-only.
func (pc *ProjectController) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := pc.projects.Delete(c.Request.Context(), id, SessionUserID(c)); err != nil {
		pc.mutationError(c, err)
		return
	}

	SetFlash(c, "success", "Project deleted successfully.")
	redirect(c, "/dashboard")
}

// projectID parses the :id path segment. A non-numeric id cannot name any
// project, so it gets the same not-found page as an unknown one.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		NotFoundPage(c)
		return 0, false
	}
	return id, true
}

func (pc *ProjectController) mutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFoundPage(c)
	case errors.Is(err, service.ErrForbidden):
		c.AbortWithStatus(http.StatusForbidden)
	default:
		serverError(c, err)
	}
}
