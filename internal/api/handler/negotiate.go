package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// MIMEApplicationYAML is the media type served and accepted for YAML
// payloads, alongside the aliases some clients send.
const MIMEApplicationYAML = "application/x-yaml"

var yamlAliases = []string{MIMEApplicationYAML, "application/yaml", "text/yaml"}

// respond renders payload as JSON, XML or YAML according to the
// request's Accept header. JSON is the default when the header is
// absent or names no supported type.
func respond(c echo.Context, status int, payload any) error {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	switch {
	case acceptsAny(accept, echo.MIMEApplicationXML, echo.MIMETextXML):
		return c.XML(status, payload)
	case acceptsAny(accept, yamlAliases...):
		b, err := yaml.Marshal(payload)
		if err != nil {
			return err
		}
		return c.Blob(status, MIMEApplicationYAML, b)
	default:
		return c.JSON(status, payload)
	}
}

func acceptsAny(accept string, types ...string) bool {
	for _, t := range types {
		if strings.Contains(accept, t) {
			return true
		}
	}
	return false
}

// NewBinder returns a binder that handles YAML request bodies and
// delegates everything else (JSON, XML, form, query) to Echo's default
// binder.
func NewBinder() echo.Binder {
	return &negotiatingBinder{}
}

type negotiatingBinder struct {
	fallback echo.DefaultBinder
}

func (b *negotiatingBinder) Bind(i any, c echo.Context) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	for _, t := range yamlAliases {
		if strings.HasPrefix(ctype, t) {
			defer c.Request().Body.Close()
			if err := yaml.NewDecoder(c.Request().Body).Decode(i); err != nil && err != io.EOF {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid yaml payload")
			}
			return nil
		}
	}
	return b.fallback.Bind(i, c)
}
