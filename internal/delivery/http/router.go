package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communitycenter/internal/delivery/http/controllers"
	"communitycenter/internal/delivery/http/middleware"
	"communitycenter/internal/domain"
)

// Controllers bundles the controllers mounted by NewRouter.
type Controllers struct {
	Event      *controllers.EventController
	AdminEvent *controllers.AdminEventController
	Room       *controllers.RoomController
	Auth       *controllers.AuthController
	Booking    *controllers.BookingController
	Donation   *controllers.DonationController
	Newsletter *controllers.NewsletterController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes under /admin require a valid token carrying the admin role.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	// Public calendar
	mux.HandleFunc("GET /events", c.Event.ListMonthEvents)
	mux.HandleFunc("GET /calendar", c.Event.GetCalendar)
	mux.HandleFunc("GET /rooms", c.Room.ListRooms)

	// Public forms
	mux.HandleFunc("POST /bookings", c.Booking.CreateBooking)
	mux.HandleFunc("POST /donations", c.Donation.CreateDonation)
	mux.HandleFunc("POST /newsletter/subscribe", c.Newsletter.Subscribe)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Admin
	mux.HandleFunc("GET /admin/events", admin(c.AdminEvent.ListEvents))
	mux.HandleFunc("POST /admin/events", admin(c.AdminEvent.CreateEvent))
	mux.HandleFunc("GET /admin/events/{id}", admin(c.AdminEvent.GetEvent))
	mux.HandleFunc("PUT /admin/events/{id}", admin(c.AdminEvent.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{id}", admin(c.AdminEvent.DeleteEvent))
	mux.HandleFunc("GET /admin/bookings", admin(c.Booking.ListBookings))
	mux.HandleFunc("PATCH /admin/bookings/{id}/status", admin(c.Booking.UpdateBookingStatus))
	mux.HandleFunc("GET /admin/donations", admin(c.Donation.ListDonations))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
