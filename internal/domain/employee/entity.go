package employee

// Employee is a roster entry. Code is the stable key every other table
// references; it never changes once punches or records exist for it.
type Employee struct {
	ID         int
	Code       string
	Name       string
	Sector     *string
	Department *string
	JobTitle   *string
	Branch     *string
	HireDate   *string
	ShiftStart string
}

// DefaultShiftStart applies when a roster row arrives without a shift start.
const DefaultShiftStart = "09:00"

// DefaultShiftEnd is a system constant; only a custom_shift rule overrides it.
const DefaultShiftEnd = "17:00"
