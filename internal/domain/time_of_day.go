package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var shiftTypeTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ShiftTypeTime はシフトの時刻を表す値オブジェクト
// "HH:mm" 形式（24時間制）の文字列で保持する
type ShiftTypeTime string

func NewShiftTypeTime(value string) (ShiftTypeTime, error) {
	if !shiftTypeTimePattern.MatchString(value) {
		return "", ErrInvalidShiftTypeTime
	}
	return ShiftTypeTime(value), nil
}

func (t ShiftTypeTime) String() string {
	return string(t)
}

// ToMinutes は 0:00 からの経過分数を返す
func (t ShiftTypeTime) ToMinutes() int {
	parts := strings.SplitN(string(t), ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
