package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/api/metrics"
	"github.com/starcode/library-api/internal/core/ports"
)

// BookHandler handles HTTP requests for Book operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/v1/book.
//
// @Summary      List books
// @Tags         books
// @Produce      json,xml
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (zero-based)"
// @Param        size       query     int     false  "Page size"       default(12)
// @Param        direction  query     string  false  "Sort direction"  Enums(asc, desc)
// @Param        sort       query     string  false  "Sort field"      default(title)
// @Success      200        {object}  bookPageVO
// @Failure      401        {object}  map[string]string
// @Router       /api/v1/book [get]
func (h *BookHandler) List(c echo.Context) error {
	page := parsePageRequest(c, "title")

	result, err := h.service.FindAll(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toBookPageVO(result, page, requestBaseURL(c)))
}

// FindByTitle handles GET /api/v1/book/find-by-title/:title.
//
// @Summary      Find books by title
// @Tags         books
// @Produce      json,xml
// @Security     BearerAuth
// @Param        title  path      string  true  "Title fragment (case-insensitive)"
// @Success      200    {object}  bookPageVO
// @Failure      401    {object}  map[string]string
// @Router       /api/v1/book/find-by-title/{title} [get]
func (h *BookHandler) FindByTitle(c echo.Context) error {
	page := parsePageRequest(c, "title")

	result, err := h.service.FindByTitle(c.Request().Context(), c.Param("title"), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toBookPageVO(result, page, requestBaseURL(c)))
}

// Get handles GET /api/v1/book/:id.
//
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json,xml
// @Security     BearerAuth
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  bookVO
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/book/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	book, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toBookVO(book, requestBaseURL(c)))
}

// Create handles POST /api/v1/book.
//
// @Summary      Add a new book
// @Tags         books
// @Accept       json,xml
// @Produce      json,xml
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  bookVO
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/book [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toBookEntity(req))
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.Inc()
	return respond(c, http.StatusCreated, toBookVO(created, requestBaseURL(c)))
}

// Update handles PUT /api/v1/book.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json,xml
// @Produce      json,xml
// @Security     BearerAuth
// @Param        body  body      updateBookRequest  true  "Book details"
// @Success      200   {object}  bookVO
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/book [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), toBookEntityForUpdate(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toBookVO(updated, requestBaseURL(c)))
}

// Delete handles DELETE /api/v1/book/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  int  true  "Book ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/book/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
