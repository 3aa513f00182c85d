// file: internals/helpers/clock/clock.go
//
// Util jam-dinding untuk engine timetable: interval disimpan sebagai pasangan
// menit-dari-tengah-malam supaya bisa dibandingkan, teks interval hanya hidup
// di boundary DTO/response.
package clock

import (
	"fmt"
	"strings"
	"time"
)

const MinutesPerDay = 24 * 60

// IntervalDelimiter adalah delimiter kanonik untuk render interval.
const IntervalDelimiter = " - "

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm"}

// ParseClock menerima "HH:mm", "HH:mm:ss", atau "h:mm AM/PM" dan mengembalikan
// menit dari tengah malam (0..1439).
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q (want HH:mm or h:mm AM/PM)", s)
}

// SplitInterval memecah teks interval jadi bagian start & end.
// Data lama memakai dua konvensi delimiter (" - " dan kata "to"); dua-duanya diterima.
func SplitInterval(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fmt.Errorf("empty interval")
	}
	for _, delim := range []string{" - ", " to ", " TO "} {
		if i := strings.Index(s, delim); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(delim):]), nil
		}
	}
	return "", "", fmt.Errorf("invalid interval %q (want \"start - end\")", s)
}

// ParseInterval memecah + mem-parse teks interval jadi pasangan menit.
func ParseInterval(s string) (int, int, error) {
	startStr, endStr, err := SplitInterval(s)
	if err != nil {
		return 0, 0, err
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// FormatMinutes merender menit-dari-tengah-malam jadi "8:00 AM".
func FormatMinutes(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	t := time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// FormatInterval merender pasangan menit jadi "8:00 AM - 9:00 AM".
func FormatInterval(start, end int) string {
	return FormatMinutes(start) + IntervalDelimiter + FormatMinutes(end)
}

// Overlaps: dua range [aStart,aEnd) dan [bStart,bEnd) saling memotong.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

var weekdayLabels = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayLabel: ISO day-of-week (Senin=1) → label Inggris untuk response.
func WeekdayLabel(dow int) string {
	if dow < 1 || dow > 7 {
		return ""
	}
	return weekdayLabels[dow]
}
