package domain

import "unicode/utf8"

// 長さ制約付きのテキスト値オブジェクト
// 文字数は rune 単位で数える（日本語の氏名・お知らせを扱うため）

type EmployeeFullName string

func NewEmployeeFullName(value string) (EmployeeFullName, error) {
	if n := utf8.RuneCountInString(value); n < 1 || n > 20 {
		return "", ErrInvalidEmployeeFullName
	}
	return EmployeeFullName(value), nil
}

func (n EmployeeFullName) String() string {
	return string(n)
}

type ShiftTypeName string

func NewShiftTypeName(value string) (ShiftTypeName, error) {
	if n := utf8.RuneCountInString(value); n < 1 || n > 10 {
		return "", ErrInvalidShiftTypeName
	}
	return ShiftTypeName(value), nil
}

func (n ShiftTypeName) String() string {
	return string(n)
}

type ShiftNoticeTitle string

func NewShiftNoticeTitle(value string) (ShiftNoticeTitle, error) {
	if n := utf8.RuneCountInString(value); n < 1 || n > 50 {
		return "", ErrInvalidShiftNoticeTitle
	}
	return ShiftNoticeTitle(value), nil
}

func (t ShiftNoticeTitle) String() string {
	return string(t)
}

type ShiftNoticeContent string

func NewShiftNoticeContent(value string) (ShiftNoticeContent, error) {
	if n := utf8.RuneCountInString(value); n < 1 || n > 500 {
		return "", ErrInvalidShiftNoticeContent
	}
	return ShiftNoticeContent(value), nil
}

func (c ShiftNoticeContent) String() string {
	return string(c)
}
