package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/api/metrics"
	"github.com/starcode/library-api/internal/core/ports"
)

// PersonHandler handles HTTP requests for Person operations.
type PersonHandler struct {
	service ports.PersonService
}

func NewPersonHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// List handles GET /api/v1/person.
//
// @Summary      List people
// @Tags         people
// @Produce      json,xml
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (zero-based)"
// @Param        size       query     int     false  "Page size"           default(12)
// @Param        direction  query     string  false  "Sort direction"      Enums(asc, desc)
// @Param        sort       query     string  false  "Sort field"          default(firstName)
// @Success      200        {object}  personPageVO
// @Failure      401        {object}  map[string]string
// @Router       /api/v1/person [get]
func (h *PersonHandler) List(c echo.Context) error {
	page := parsePageRequest(c, "firstName")

	result, err := h.service.FindAll(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPersonPageVO(result, page, requestBaseURL(c)))
}

// FindByName handles GET /api/v1/person/find-by-name/:firstName.
//
// @Summary      Find people by first name
// @Tags         people
// @Produce      json,xml
// @Security     BearerAuth
// @Param        firstName  path      string  true  "First name fragment (case-insensitive)"
// @Success      200        {object}  personPageVO
// @Failure      401        {object}  map[string]string
// @Router       /api/v1/person/find-by-name/{firstName} [get]
func (h *PersonHandler) FindByName(c echo.Context) error {
	page := parsePageRequest(c, "firstName")

	result, err := h.service.FindByFirstName(c.Request().Context(), c.Param("firstName"), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPersonPageVO(result, page, requestBaseURL(c)))
}

// Get handles GET /api/v1/person/:id.
//
// @Summary      Get a person by ID
// @Tags         people
// @Produce      json,xml
// @Security     BearerAuth
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  personVO
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/person/{id} [get]
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	person, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPersonVO(person, requestBaseURL(c)))
}

// Create handles POST /api/v1/person.
//
// @Summary      Add a new person
// @Tags         people
// @Accept       json,xml
// @Produce      json,xml
// @Security     BearerAuth
// @Param        body  body      createPersonRequest  true  "Person details"
// @Success      201   {object}  personVO
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/person [post]
func (h *PersonHandler) Create(c echo.Context) error {
	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toPersonEntity(req))
	if err != nil {
		return err
	}

	metrics.PersonsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, toPersonVO(created, requestBaseURL(c)))
}

// Update handles PUT /api/v1/person.
//
// @Summary      Update a person
// @Tags         people
// @Accept       json,xml
// @Produce      json,xml
// @Security     BearerAuth
// @Param        body  body      updatePersonRequest  true  "Person details"
// @Success      200   {object}  personVO
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/person [put]
func (h *PersonHandler) Update(c echo.Context) error {
	var req updatePersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), toPersonEntityForUpdate(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPersonVO(updated, requestBaseURL(c)))
}

// Disable handles PATCH /api/v1/person/:id.
//
// @Summary      Disable a person
// @Tags         people
// @Produce      json,xml
// @Security     BearerAuth
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  personVO
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/person/{id} [patch]
func (h *PersonHandler) Disable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	person, err := h.service.Disable(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPersonVO(person, requestBaseURL(c)))
}

// Delete handles DELETE /api/v1/person/:id.
//
// @Summary      Delete a person
// @Tags         people
// @Security     BearerAuth
// @Param        id  path  int  true  "Person ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/person/{id} [delete]
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter as a positive int64.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
