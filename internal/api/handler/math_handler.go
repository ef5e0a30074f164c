package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/api/metrics"
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/pkg/numeric"
)

// MathHandler serves the arithmetic utility endpoints. Operands are
// path parameters validated with numeric.IsNumeric; both "." and ","
// work as decimal separators. Division by zero follows IEEE 754.
type MathHandler struct{}

func NewMathHandler() *MathHandler {
	return &MathHandler{}
}

// Sum handles GET /api/v1/math/sum/:a/:b.
//
// @Summary      Add two numbers
// @Tags         math
// @Produce      json
// @Security     BearerAuth
// @Param        a    path      string  true  "First operand"
// @Param        b    path      string  true  "Second operand"
// @Success      200  {number}  float64
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/math/sum/{a}/{b} [get]
func (h *MathHandler) Sum(c echo.Context) error {
	return h.binary(c, "sum", func(a, b float64) float64 { return a + b })
}

// Sub handles GET /api/v1/math/sub/:a/:b.
func (h *MathHandler) Sub(c echo.Context) error {
	return h.binary(c, "sub", func(a, b float64) float64 { return a - b })
}

// Mul handles GET /api/v1/math/mul/:a/:b.
func (h *MathHandler) Mul(c echo.Context) error {
	return h.binary(c, "mul", func(a, b float64) float64 { return a * b })
}

// Div handles GET /api/v1/math/div/:a/:b.
func (h *MathHandler) Div(c echo.Context) error {
	return h.binary(c, "div", func(a, b float64) float64 { return a / b })
}

// Avg handles GET /api/v1/math/avg/:a/:b.
func (h *MathHandler) Avg(c echo.Context) error {
	return h.binary(c, "avg", func(a, b float64) float64 { return (a + b) / 2 })
}

// Sqrt handles GET /api/v1/math/sqrt/:a.
//
// @Summary      Square root
// @Tags         math
// @Produce      json
// @Security     BearerAuth
// @Param        a    path      string  true  "Operand"
// @Success      200  {number}  float64
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/math/sqrt/{a} [get]
func (h *MathHandler) Sqrt(c echo.Context) error {
	a := c.Param("a")
	if !numeric.IsNumeric(a) {
		return domain.ErrUnsupportedMathOperation
	}

	metrics.MathOperationsTotal.WithLabelValues("sqrt").Inc()
	return respondNumber(c, math.Sqrt(numeric.ParseDouble(a)))
}

func (h *MathHandler) binary(c echo.Context, op string, f func(a, b float64) float64) error {
	a, b := c.Param("a"), c.Param("b")
	if !numeric.IsNumeric(a) || !numeric.IsNumeric(b) {
		return domain.ErrUnsupportedMathOperation
	}

	metrics.MathOperationsTotal.WithLabelValues(op).Inc()
	return respondNumber(c, f(numeric.ParseDouble(a), numeric.ParseDouble(b)))
}

// respondNumber writes a float64 result. Inf and NaN have no JSON
// encoding, so division by zero and friends render as plain text
// rather than erroring.
func respondNumber(c echo.Context, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return c.String(http.StatusOK, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return c.JSON(http.StatusOK, v)
}
