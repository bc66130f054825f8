package attendance

import (
	"sort"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
)

const dateLayout = "2006-01-02"

// localDate maps a UTC instant to the client's local calendar date.
// Offset convention: UTC = local + offset, so local = UTC - offset.
func localDate(t time.Time, offsetMinutes int) string {
	return t.Add(-time.Duration(offsetMinutes) * time.Minute).UTC().Format(dateLayout)
}

// localDayStartUTC returns the UTC instant of local midnight for a local
// calendar date.
func localDayStartUTC(day string, offsetMinutes int) (time.Time, error) {
	t, err := time.Parse(dateLayout, day)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(offsetMinutes) * time.Minute), nil
}

// localDateRange yields every local calendar date from start to end
// inclusive.
func localDateRange(start, end string) ([]string, error) {
	startT, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, err
	}
	endT, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, err
	}
	var days []string
	for d := startT; !d.After(endT); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	return days, nil
}

// punchBuckets holds punches grouped by employee and local day. Linked
// punches are the ones an operator moved onto a different day's bucket via a
// previous_day_checkout decision; they only ever act as checkout candidates'
// peers — selection treats them like native punches except that a linked
// punch cannot become the day's check-in.
type punchBuckets struct {
	native map[string]map[string][]time.Time // employeeCode -> day -> punches
	linked map[string]map[string][]time.Time
}

// bucketPunches assigns each punch to its local day, honoring punch-link
// decisions: a punch with a confirmed previous_day_checkout ruling leaves
// its raw day entirely and joins the target day. Undecided punches and the
// other two actions keep the punch where it was recorded.
func bucketPunches(punches []punch.Punch, decisions map[string]punchlink.Decision, offsetMinutes int) punchBuckets {
	buckets := punchBuckets{
		native: make(map[string]map[string][]time.Time),
		linked: make(map[string]map[string][]time.Time),
	}

	for _, p := range punches {
		if d, ok := decisions[punchlink.Key(p.EmployeeCode, p.PunchDatetime)]; ok &&
			d.Action == punchlink.ActionPreviousDayCheckout && d.TargetBaseDate != nil {
			addPunch(buckets.linked, p.EmployeeCode, *d.TargetBaseDate, p.PunchDatetime)
			continue
		}
		addPunch(buckets.native, p.EmployeeCode, localDate(p.PunchDatetime, offsetMinutes), p.PunchDatetime)
	}

	for _, byDay := range buckets.native {
		for _, ps := range byDay {
			sortPunches(ps)
		}
	}
	for _, byDay := range buckets.linked {
		for _, ps := range byDay {
			sortPunches(ps)
		}
	}
	return buckets
}

func addPunch(m map[string]map[string][]time.Time, code, day string, t time.Time) {
	if m[code] == nil {
		m[code] = make(map[string][]time.Time)
	}
	m[code][day] = append(m[code][day], t)
}

func sortPunches(ps []time.Time) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Before(ps[j]) })
}

// computeCheckInOut picks the day's check-in and check-out. Check-in is the
// earliest native punch; check-out is the latest punch overall (native or
// linked) when it is distinct from the check-in. A lone native punch yields
// a check-in with no check-out; a lone linked punch yields a check-out with
// no check-in.
func computeCheckInOut(dayPunches, linkedPunches []time.Time) (checkIn, checkOut *time.Time) {
	if len(dayPunches) == 0 && len(linkedPunches) == 0 {
		return nil, nil
	}

	if len(dayPunches) > 0 {
		first := dayPunches[0]
		checkIn = &first
	}

	var last time.Time
	for _, t := range dayPunches {
		if t.After(last) {
			last = t
		}
	}
	for _, t := range linkedPunches {
		if t.After(last) {
			last = t
		}
	}
	if checkIn == nil || last.After(*checkIn) {
		out := last
		checkOut = &out
	}
	return checkIn, checkOut
}
