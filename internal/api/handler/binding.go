package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// strictJSONSerializer rejects request bodies carrying fields the target
// struct does not declare. Encoding is delegated to Echo's default.
type strictJSONSerializer struct {
	echo.DefaultJSONSerializer
}

// NewJSONSerializer returns the serializer assigned to echo.Echo.JSONSerializer.
func NewJSONSerializer() echo.JSONSerializer {
	return strictJSONSerializer{}
}

func (strictJSONSerializer) Deserialize(c echo.Context, i any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(i)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		msg := fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
		return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
	case errors.As(err, &syntaxErr):
		msg := fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
		return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return echo.NewHTTPError(http.StatusBadRequest, "property "+field+" should not exist").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
}

var binder = &echo.DefaultBinder{}

// bindQuery binds query parameters into req after rejecting keys not in allowed.
func bindQuery(c echo.Context, req any, allowed ...string) error {
	for key := range c.QueryParams() {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return echo.NewHTTPError(http.StatusBadRequest, "property "+key+" should not exist")
		}
	}
	if err := binder.BindQueryParams(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters").SetInternal(err)
	}
	return validate(c, req)
}

// blankQuery reports whether key was sent with an empty value. Binding cannot
// tell that apart from an absent key.
func blankQuery(c echo.Context, key string) bool {
	q := c.QueryParams()
	return q.Has(key) && q.Get(key) == ""
}

// bindBody decodes the JSON body into req and validates it.
func bindBody(c echo.Context, req any) error {
	if err := binder.BindBody(c, req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	return validate(c, req)
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// paramID parses the :id path parameter as a positive integer.
func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Validation failed (numeric string is expected)")
	}
	return id, nil
}
