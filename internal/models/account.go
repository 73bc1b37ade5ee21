package models

// EmployeeStatus is the current working status of an account.
type EmployeeStatus string

// Employee status values
const (
	StatusOff     EmployeeStatus = "off"
	StatusOnShift EmployeeStatus = "on_shift"
	StatusBreak   EmployeeStatus = "break"
	StatusLunch   EmployeeStatus = "lunch"
)

// TabKey names a screen an account can pin to its home quick links.
type TabKey string

// Tab keys
const (
	TabInventory     TabKey = "inventory"
	TabChores        TabKey = "chores"
	TabObjectives    TabKey = "objectives"
	TabSafety        TabKey = "safety"
	TabPrizes        TabKey = "prizes"
	TabMessages      TabKey = "messages"
	TabSchedule      TabKey = "schedule"
	TabNotifications TabKey = "notifications"
	TabRequests      TabKey = "requests"
)

// MaxFavoriteTabs caps the quick links on the home screen.
const MaxFavoriteTabs = 4

// DayKey is a weekday abbreviation used as the schedule map key.
type DayKey string

// Weekday keys
const (
	DayMon DayKey = "Mon"
	DayTue DayKey = "Tue"
	DayWed DayKey = "Wed"
	DayThu DayKey = "Thu"
	DayFri DayKey = "Fri"
	DaySat DayKey = "Sat"
	DaySun DayKey = "Sun"
)

// DayKeys returns the weekday keys in calendar order.
func DayKeys() []DayKey {
	return []DayKey{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}
}

// DayHours is one weekday of a schedule.
type DayHours struct {
	Day   DayKey `json:"day"`
	Start string `json:"start"` // HH:mm
	End   string `json:"end"`   // HH:mm
	Off   bool   `json:"off,omitempty"`
}

// WeeklySchedule maps each weekday to its hours.
type WeeklySchedule map[DayKey]DayHours

// DefaultSchedule returns the schedule new accounts start with:
// Mon-Sat 09:00-17:00, Sunday off.
func DefaultSchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, 7)
	for _, d := range DayKeys() {
		schedule[d] = DayHours{Day: d, Start: "09:00", End: "17:00", Off: d == DaySun}
	}
	return schedule
}

// Default durations and favorites backfilled at login.
const (
	DefaultBreakMinutes = 5
	DefaultLunchMinutes = 30
)

// DefaultFavoriteTabs returns the quick links new accounts start with.
func DefaultFavoriteTabs() []TabKey {
	return []TabKey{TabInventory, TabChores, TabNotifications, TabRequests}
}

// Account is a logged-in identity bound to one device and one role.
// Password is stored in plaintext; this is a local, device-trust-based
// identity model, not real authentication.
type Account struct {
	ID              string         `json:"id"`
	DeviceID        string         `json:"deviceId"`
	Name            string         `json:"name"`
	Role            Role           `json:"role"`
	Password        string         `json:"password"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	AvatarURI       string         `json:"avatarUri,omitempty"`
	Progress        int            `json:"progress"`
	Schedule        WeeklySchedule `json:"schedule"`
	Status          EmployeeStatus `json:"status,omitempty"`
	StatusUntil     int64          `json:"statusUntil,omitempty"`
	BreakDefaultMin int            `json:"breakDefaultMin,omitempty"`
	LunchDefaultMin int            `json:"lunchDefaultMin,omitempty"`
	FavoriteTabs    []TabKey       `json:"favoriteTabs,omitempty"`
	CreatedAt       int64          `json:"createdAt"`
	UpdatedAt       int64          `json:"updatedAt"`
}
