package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/Domenick1991/farecompare/internal/service/fares"
	"github.com/gin-gonic/gin"
)

type FareHandler struct {
	service fares.FareUseCase
}

type createFlightRequest struct {
	ID            string  `json:"id" binding:"required"`
	Airline       string  `json:"airline" binding:"required"`
	Source        string  `json:"source" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	Fare          float64 `json:"fare"`
	Duration      string  `json:"duration"`
	DepartureTime string  `json:"departure_time"`
}

type routeQuery struct {
	Source      string `form:"source" binding:"required"`
	Destination string `form:"destination" binding:"required"`
}

type flightsResponse struct {
	Count   int             `json:"count"`
	Flights []domain.Flight `json:"flights"`
}

func NewFareHandler(service fares.FareUseCase) *FareHandler {
	return &FareHandler{service: service}
}

func (h *FareHandler) Register(router *gin.RouterGroup) {
	router.POST("/flights", h.create)
	router.GET("/flights", h.list)
	router.GET("/flights/search", h.search)
	router.GET("/flights/cheapest", h.cheapest)
	router.GET("/routes", h.routes)
}

func (h *FareHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := domain.NewFlight(req.ID, req.Airline, req.Source, req.Destination, req.Fare, req.Duration, req.DepartureTime)
	if err == nil {
		err = h.service.Add(c.Request.Context(), flight)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidFlight) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, flight)
}

func (h *FareHandler) list(c *gin.Context) {
	flights := h.service.SortedByFare(c.Request.Context())
	c.JSON(http.StatusOK, flightsResponse{Count: len(flights), Flights: flights})
}

func (h *FareHandler) search(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source and destination are required"})
		return
	}
	flights := h.service.SearchRoute(c.Request.Context(), q.Source, q.Destination)
	c.JSON(http.StatusOK, flightsResponse{Count: len(flights), Flights: flights})
}

func (h *FareHandler) cheapest(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source and destination are required"})
		return
	}
	quote, ok := h.service.RouteQuote(c.Request.Context(), q.Source, q.Destination)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no flights found from " + q.Source + " to " + q.Destination})
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *FareHandler) routes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Routes(c.Request.Context()))
}
