package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// A API recebe data e hora como strings soltas (YYYY-MM-DD / HH:mm),
// sempre interpretadas no fuso da loja.

func ParseDateIn(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

func ParseDateTimeIn(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Location(tz),
	)
}

// DayBounds retorna [00:00, 24:00) do dia de ref no timezone da loja
func DayBounds(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return start, start.Add(24 * time.Hour)
}

// SameDay verifica se dois instantes caem no mesmo dia-calendário
// no timezone de a
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
