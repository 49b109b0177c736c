package domain

import (
	"regexp"
	"time"
)

var shiftAssignmentDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ShiftAssignmentDate はシフトアサインの日付を表す値オブジェクト
// "YYYY-MM-DD" 形式の文字列で保持し、実在する暦日のみ許容する
type ShiftAssignmentDate string

func NewShiftAssignmentDate(value string) (ShiftAssignmentDate, error) {
	if !shiftAssignmentDatePattern.MatchString(value) {
		return "", ErrInvalidShiftAssignmentDate
	}
	// time.Parse は 2月30日 や 平年の 2月29日 のような存在しない日付を拒否する
	if _, err := time.ParseInLocation("2006-01-02", value, JST); err != nil {
		return "", ErrInvalidShiftAssignmentDate
	}
	return ShiftAssignmentDate(value), nil
}

func (d ShiftAssignmentDate) String() string {
	return string(d)
}

func (d ShiftAssignmentDate) Time() time.Time {
	t, _ := time.ParseInLocation("2006-01-02", string(d), JST)
	return t
}

func (d ShiftAssignmentDate) Year() int {
	return d.Time().Year()
}

// Month は 1〜12 を返す
func (d ShiftAssignmentDate) Month() int {
	return int(d.Time().Month())
}

func (d ShiftAssignmentDate) Day() int {
	return d.Time().Day()
}
