package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// JobHandler handles HTTP requests for the job catalog.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs — public listing of active jobs.
//
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        location    query  string  false  "District filter (exact match)"
// @Param        category    query  string  false  "Category filter (exact match)"
// @Param        min_salary  query  int     false  "Keep jobs whose salary_max >= min_salary"
// @Param        max_salary  query  int     false  "Keep jobs whose salary_min <= max_salary"
// @Param        experience  query  int     false  "Keep jobs whose experience_required <= experience"
// @Param        search      query  string  false  "Free-text search on title/company/description"
// @Param        page        query  int     false  "1-based page number (default 1)"
// @Param        limit       query  int     false  "Page size (default 10, max 100)"
// @Success      200  {object}  listJobsResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	in := ports.ListJobsInput{
		Location: c.QueryParam("location"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	in.MinSalary, _ = strconv.Atoi(c.QueryParam("min_salary"))
	in.MaxSalary, _ = strconv.Atoi(c.QueryParam("max_salary"))
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if raw := c.QueryParam("experience"); raw != "" {
		exp, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "experience must be a number")
		}
		in.Experience = exp
		in.HasExperience = true
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListJobsResponse(result))
}

// Get handles GET /v1/jobs/:id — public detail view, any status.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /v1/jobs — employers only.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Posting details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), userID, toCreateJobInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /v1/jobs/:id — owning employer only.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toUpdateJobInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Close handles DELETE /v1/jobs/:id — owning employer only. The posting is
// closed rather than removed so existing applications keep a valid reference.
//
// @Summary      Close a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Close(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Close(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "job closed"})
}

// MyJobs handles GET /v1/jobs/employer/my-jobs — all of the employer's
// postings, any status, newest first.
//
// @Summary      List own job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   jobResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/jobs/employer/my-jobs [get]
func (h *JobHandler) MyJobs(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListByEmployer(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	items := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, toJobResponse(j))
	}
	return c.JSON(http.StatusOK, items)
}
