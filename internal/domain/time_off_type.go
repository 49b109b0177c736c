package domain

// TimeOffType は休みの種別（公休・有給）の値オブジェクト
type TimeOffType string

const (
	TimeOffTypePublicHoliday TimeOffType = "PUBLIC_HOLIDAY"
	TimeOffTypePaidLeave     TimeOffType = "PAID_LEAVE"
)

func ParseTimeOffType(code string) (TimeOffType, error) {
	switch TimeOffType(code) {
	case TimeOffTypePublicHoliday, TimeOffTypePaidLeave:
		return TimeOffType(code), nil
	default:
		return "", ErrInvalidTimeOffType
	}
}

func (t TimeOffType) Code() string {
	return string(t)
}

func (t TimeOffType) DisplayName() string {
	switch t {
	case TimeOffTypePublicHoliday:
		return "公休"
	case TimeOffTypePaidLeave:
		return "有給"
	default:
		return ""
	}
}
