package domain

// EmployeeType は従業員種別（社員・派遣）の値オブジェクト
// 永続化にはコードを、画面表示には DisplayName を使う
type EmployeeType string

const (
	EmployeeTypeRegular    EmployeeType = "REGULAR"
	EmployeeTypeDispatched EmployeeType = "DISPATCHED"
)

func ParseEmployeeType(code string) (EmployeeType, error) {
	switch EmployeeType(code) {
	case EmployeeTypeRegular, EmployeeTypeDispatched:
		return EmployeeType(code), nil
	default:
		return "", ErrInvalidEmployeeType
	}
}

func (t EmployeeType) Code() string {
	return string(t)
}

func (t EmployeeType) DisplayName() string {
	switch t {
	case EmployeeTypeRegular:
		return "社員"
	case EmployeeTypeDispatched:
		return "派遣"
	default:
		return ""
	}
}

func (t EmployeeType) IsRegular() bool {
	return t == EmployeeTypeRegular
}

func (t EmployeeType) IsDispatched() bool {
	return t == EmployeeTypeDispatched
}
