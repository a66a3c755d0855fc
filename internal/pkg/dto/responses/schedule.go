package responses

type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DaySchedule struct {
	Date      string         `json:"date"`
	Available []TimeInterval `json:"available"`
	Occupied  []TimeInterval `json:"occupied"`
}

type Reservation struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
	CreatedAt string `json:"created_at"`
}
