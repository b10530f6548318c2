package booking

type CreateBookingRequest struct {
	HotelID         int64   `json:"hotel_id" binding:"required"`
	RoomIDs         []int64 `json:"room_ids" binding:"required,min=1"`
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Adults          int     `json:"adults" binding:"required,min=1"`
	Children        int     `json:"children"`
	Infants         int     `json:"infants"`
	GuestName       string  `json:"guest_name" binding:"required"`
	GuestEmail      string  `json:"guest_email" binding:"required,email"`
	GuestPhone      string  `json:"guest_phone"`
	SpecialRequests string  `json:"special_requests"`
	DiscountAmount  float64 `json:"discount_amount"`
	Source          string  `json:"booking_source"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
