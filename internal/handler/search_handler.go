package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/dto"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/service"
)

const (
	msgMissingSearchParams = "Missing required parameters: fromStation, toStation, date"
	msgMissingStationName  = "Missing required parameter: stationName"
	msgTrainFetchFailed    = "Failed to fetch train data"
	msgStationFetchFailed  = "Failed to fetch station codes"
)

type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/search-trains", h.SearchTrains)
	e.POST("/api/get-station-code", h.GetStationCode)
}

func (h *SearchHandler) SearchTrains(c echo.Context) error {
	var req dto.SearchTrainsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingSearchParams)
	}
	if req.FromStation == "" || req.ToStation == "" || req.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingSearchParams)
	}

	trains, err := h.svc.SearchTrains(c.Request().Context(), req.FromStation, req.ToStation, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msgTrainFetchFailed)
	}

	return c.JSON(http.StatusOK, dto.ToTrainSearchResponse(trains))
}

func (h *SearchHandler) GetStationCode(c echo.Context) error {
	var req dto.StationLookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingStationName)
	}
	if req.StationName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingStationName)
	}

	stations, err := h.svc.LookupStations(c.Request().Context(), req.StationName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msgStationFetchFailed)
	}

	return c.JSON(http.StatusOK, dto.ToStationLookupResponse(stations))
}
