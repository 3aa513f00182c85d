package clock

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "24h", in: "08:15", want: 495},
		{name: "24h with seconds", in: "13:30:00", want: 810},
		{name: "am", in: "8:15 AM", want: 495},
		{name: "pm", in: "1:30 PM", want: 810},
		{name: "pm no space", in: "1:30PM", want: 810},
		{name: "midnight", in: "00:00", want: 0},
		{name: "noon", in: "12:00 PM", want: 720},
		{name: "whitespace", in: "  9:00 AM ", want: 540},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "quarter past", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "dash delimiter", in: "8:00 AM - 9:00 AM", wantStart: 480, wantEnd: 540},
		{name: "to delimiter", in: "8:00 AM to 9:00 AM", wantStart: 480, wantEnd: 540},
		{name: "24h dash", in: "08:00 - 09:00", wantStart: 480, wantEnd: 540},
		{name: "no delimiter", in: "8:00 AM 9:00 AM", wantErr: true},
		{name: "bad end", in: "8:00 AM - later", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseInterval(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInterval(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (start != tt.wantStart || end != tt.wantEnd) {
				t.Errorf("ParseInterval(%q) = (%d,%d), want (%d,%d)", tt.in, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFormatInterval(t *testing.T) {
	if got := FormatInterval(480, 540); got != "8:00 AM - 9:00 AM" {
		t.Errorf("FormatInterval(480,540) = %q", got)
	}
	if got := FormatInterval(540, 555); got != "9:00 AM - 9:15 AM" {
		t.Errorf("FormatInterval(540,555) = %q", got)
	}
	if got := FormatMinutes(0); got != "12:00 AM" {
		t.Errorf("FormatMinutes(0) = %q", got)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "identical", aStart: 480, aEnd: 540, bStart: 480, bEnd: 540, want: true},
		{name: "partial", aStart: 480, aEnd: 540, bStart: 510, bEnd: 570, want: true},
		{name: "contained", aStart: 480, aEnd: 540, bStart: 490, bEnd: 500, want: true},
		{name: "adjacent", aStart: 480, aEnd: 540, bStart: 540, bEnd: 600, want: false},
		{name: "disjoint", aStart: 480, aEnd: 540, bStart: 600, bEnd: 660, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekdayLabel(t *testing.T) {
	if got := WeekdayLabel(1); got != "Monday" {
		t.Errorf("WeekdayLabel(1) = %q", got)
	}
	if got := WeekdayLabel(7); got != "Sunday" {
		t.Errorf("WeekdayLabel(7) = %q", got)
	}
	if got := WeekdayLabel(0); got != "" {
		t.Errorf("WeekdayLabel(0) = %q", got)
	}
	if got := WeekdayLabel(8); got != "" {
		t.Errorf("WeekdayLabel(8) = %q", got)
	}
}
