package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookRoom(c *ginext.Context)
	ViewBookingDetails(c *ginext.Context)
	ViewAllGuests(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ModifyBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		bookings := api.Group("/bookings")
		bookings.POST("", h.BookRoom)
		bookings.GET("/details", h.ViewBookingDetails)
		bookings.GET("/guests", h.ViewAllGuests)
		bookings.DELETE("/cancel", h.CancelBooking)
		bookings.PUT("/modify", h.ModifyBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
