package domain

// ShiftScheduleYear はシフトスケジュールの対象年（2000〜2100）
type ShiftScheduleYear int

func NewShiftScheduleYear(value int) (ShiftScheduleYear, error) {
	if value < 2000 || value > 2100 {
		return 0, ErrInvalidShiftScheduleYear
	}
	return ShiftScheduleYear(value), nil
}

func (y ShiftScheduleYear) Int() int {
	return int(y)
}

// ShiftScheduleMonth はシフトスケジュールの対象月（1〜12）
type ShiftScheduleMonth int

func NewShiftScheduleMonth(value int) (ShiftScheduleMonth, error) {
	if value < 1 || value > 12 {
		return 0, ErrInvalidShiftScheduleMonth
	}
	return ShiftScheduleMonth(value), nil
}

func (m ShiftScheduleMonth) Int() int {
	return int(m)
}
