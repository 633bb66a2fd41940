package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindBookRequest(t *testing.T, body string) bookRequest {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var out bookRequest
	require.NoError(t, c.Bind(&out))
	return out
}

func TestBookRequestPriceOmittedVersusZero(t *testing.T) {
	// Omitted price means "quote server-side": the field stays nil.
	omitted := bindBookRequest(t, `{"flight_id":1,"seat_number":"A1","class":"Economy"}`)
	assert.Nil(t, omitted.PriceCents)

	// An explicit zero is a zero-fare booking, not a quote request.
	zero := bindBookRequest(t, `{"flight_id":1,"seat_number":"A1","class":"Economy","price_cents":0}`)
	require.NotNil(t, zero.PriceCents)
	assert.Equal(t, uint32(0), *zero.PriceCents)

	explicit := bindBookRequest(t, `{"flight_id":1,"seat_number":"A1","class":"Economy","price_cents":12500}`)
	require.NotNil(t, explicit.PriceCents)
	assert.Equal(t, uint32(12500), *explicit.PriceCents)
}
