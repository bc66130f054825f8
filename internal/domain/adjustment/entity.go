package adjustment

// Adjustment types keep the Arabic labels used on the HR sheets this system
// ingests; the engine matches on the exact strings.
const (
	TypeMorningPermission = "اذن صباحي"
	TypeEveningPermission = "اذن مسائي"
	TypeHalfDayLeave      = "إجازة نص يوم"
	TypeBusinessTrip      = "مأمورية"
)

var Types = []string{
	TypeMorningPermission,
	TypeEveningPermission,
	TypeHalfDayLeave,
	TypeBusinessTrip,
}

// Adjustment is one per-day leave/permission/trip entry. Date is a local
// calendar date (YYYY-MM-DD); FromTime/ToTime are wall-clock times on that
// day.
type Adjustment struct {
	ID           int
	EmployeeCode string
	Date         string
	Type         string
	FromTime     string
	ToTime       string
	Source       *string
	Note         *string
}
