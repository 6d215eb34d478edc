package v1handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timeservice/internal/api/handler/v1handler"
	"timeservice/internal/clock"
	"timeservice/internal/timeops"
	mocktimeops "timeservice/internal/timeops/mock"
	"timeservice/internal/timezone"
	"timeservice/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedDeps wires the real service against a frozen clock.
func fixedDeps(at time.Time) v1handler.Deps {
	return v1handler.Deps{
		Time: timeops.New(timezone.NewResolver(), clock.Fixed(at)),
	}
}

func TestCurrentTime_OK(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/time/current?timezone=America/New_York", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{
		"timezone": "America/New_York",
		"datetime": "2025-01-15T12:00:00-05:00",
		"utc_offset": "-05:00",
		"is_dst": false
	}`, rec.Body.String())
}

func TestCurrentTime_InvalidTimezone(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/time/current?timezone=Invalid/Zone", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "INVALID_TIMEZONE", body.Error.Code)
	require.Contains(t, body.Error.Message, "Invalid/Zone")
}

func TestCurrentTime_MissingTimezone(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/current", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_TIMEZONE", decodeError(t, rec).Error.Code)
}

func TestConvertTime_OK(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/time/convert", strings.NewReader(`{
		"source_timezone": "America/New_York",
		"time": "14:30",
		"target_timezone": "Europe/Paris"
	}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"source": {
			"timezone": "America/New_York",
			"datetime": "2025-01-15T14:30:00-05:00",
			"utc_offset": "-05:00",
			"is_dst": false
		},
		"target": {
			"timezone": "Europe/Paris",
			"datetime": "2025-01-15T20:30:00+01:00",
			"utc_offset": "+01:00",
			"is_dst": false
		},
		"time_difference_hours": 6.0
	}`, rec.Body.String())
}

func TestConvertTime_InvalidTargetNamesRole(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/time/convert",
		strings.NewReader(`{"source_timezone":"UTC","time":"14:30","target_timezone":"Nowhere/Land"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "INVALID_TIMEZONE", body.Error.Code)
	require.Contains(t, body.Error.Message, "target timezone")
}

func TestConvertTime_InvalidTimeFormat(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	for _, in := range []string{"25:00", "9:5", "abc"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/time/convert",
			strings.NewReader(`{"source_timezone":"UTC","time":"`+in+`","target_timezone":"UTC"}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code, "input %q", in)
		require.Equal(t, "INVALID_TIME_FORMAT", decodeError(t, rec).Error.Code, "input %q", in)
	}
}

func TestConvertTime_MalformedBody(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/time/convert",
		strings.NewReader(`{not json`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", decodeError(t, rec).Error.Code)
}

func TestConvertTime_MissingFields(t *testing.T) {
	router := newRouter(fixedDeps(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/time/convert",
		strings.NewReader(`{"source_timezone":"UTC"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", decodeError(t, rec).Error.Code)
}

func TestCurrentTime_InternalErrorIsHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktimeops.NewMockService(ctrl)
	svc.EXPECT().
		CurrentTime(gomock.Any(), "UTC").
		Return(nil, errors.New("tzdata exploded"))

	router := newRouter(v1handler.Deps{Time: svc})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/current?timezone=UTC", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "INTERNAL", body.Error.Code)
	require.Equal(t, "internal error", body.Error.Message)
	require.NotContains(t, rec.Body.String(), "exploded")
}

func TestConvertTime_PassesParametersThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktimeops.NewMockService(ctrl)
	svc.EXPECT().
		ConvertTime(gomock.Any(), "Europe/London", "23:45", "Pacific/Auckland").
		Return(&domain.Conversion{TimeDifferenceHours: 13}, nil)

	router := newRouter(v1handler.Deps{Time: svc})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/time/convert",
		strings.NewReader(`{"source_timezone":"Europe/London","time":"23:45","target_timezone":"Pacific/Auckland"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
}
