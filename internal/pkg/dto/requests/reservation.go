package requests

type CancelReservation struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time" validate:"required,time_of_day"`
	Phone string `json:"phone" validate:"required,phone_number"`
}
