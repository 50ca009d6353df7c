package routes

import (
	"github.com/julienschmidt/httprouter"

	"banquet/auth"
	"banquet/beo"
	"banquet/booking"
	"banquet/menu"
	"banquet/middleware"
	"banquet/proposal"
	"banquet/ratelim"
	"banquet/rules"
	"banquet/staff"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", auth.Register)
	router.POST("/api/auth/login", auth.Login)
	router.POST("/api/auth/refresh", auth.RefreshToken)
	router.POST("/api/auth/logout", auth.Logout)
}

func AddRulesRoutes(router *httprouter.Router) {
	router.GET("/api/rules", middleware.Authenticate(rules.GetRules))
	router.PUT("/api/rules", middleware.Authenticate(rules.SaveRules))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", middleware.Authenticate(booking.CreateBooking))
	router.GET("/api/bookings", middleware.Authenticate(booking.ListBookings))
	router.GET("/api/bookings/:id", middleware.Authenticate(booking.GetBooking))
	router.PUT("/api/bookings/:id", middleware.Authenticate(booking.UpdateBooking))
	router.POST("/api/bookings/:id/deposit", middleware.Authenticate(booking.RecordDeposit))
	router.POST("/api/bookings/:id/cancel", middleware.Authenticate(booking.CancelBooking))
	router.POST("/api/bookings/:id/assignments", middleware.Authenticate(booking.AssignStaff))
	router.DELETE("/api/bookings/:id/assignments/:staffId", middleware.Authenticate(booking.UnassignStaff))
	router.GET("/api/bookings/:id/eligible-staff", middleware.Authenticate(booking.EligibleStaff))
	router.GET("/api/bookings/:id/beo", middleware.Authenticate(beo.PrintBEO))
	router.GET("/ws/bookings/:id", middleware.Authenticate(booking.HandleWS))
}

func AddStaffRoutes(router *httprouter.Router) {
	router.POST("/api/staff", middleware.Authenticate(staff.CreateStaff))
	router.GET("/api/staff", middleware.Authenticate(staff.ListStaff))
	router.GET("/api/staff/:id", middleware.Authenticate(staff.GetStaff))
	router.PUT("/api/staff/:id", middleware.Authenticate(staff.UpdateStaff))
	router.DELETE("/api/staff/:id", middleware.Authenticate(staff.DeleteStaff))
	router.GET("/api/staff/:id/availability", middleware.Authenticate(staff.CheckAvailability))
}

// Proposal view/accept are public: the token is the credential, so they sit
// behind the rate limiter instead of auth.
func AddProposalRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/proposals", middleware.Authenticate(proposal.CreateProposal))
	router.GET("/api/proposals/:token", rl.Limit(proposal.ViewProposal))
	router.POST("/api/proposals/:token/accept", rl.Limit(proposal.AcceptProposal))
	router.GET("/api/proposals/:token/qr", rl.Limit(proposal.ProposalQR))
}

func AddMenuRoutes(router *httprouter.Router) {
	router.GET("/api/menu", menu.ListItems)
	router.POST("/api/menu", middleware.Authenticate(menu.CreateItem))
	router.PUT("/api/menu/:id", middleware.Authenticate(menu.UpdateItem))
	router.DELETE("/api/menu/:id", middleware.Authenticate(menu.DeleteItem))
}
